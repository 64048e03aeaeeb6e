package models

import "time"

type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;uniqueIndex"`
	Description string  `gorm:"type:text;not null;default:''"`
	Events      []Event `gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const CategoryOrder = "categories.name ASC"

func (c Category) String() string {
	return c.Name
}

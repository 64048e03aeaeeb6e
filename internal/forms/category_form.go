package forms

import (
	"strings"

	"github.com/farellandr/eventure/internal/models"
)

// CategoryInput is the raw category form submission.
type CategoryInput struct {
	Name        string `form:"name" validate:"required,max=100"`
	Description string `form:"description"`
}

func CategoryInputFrom(c models.Category) CategoryInput {
	return CategoryInput{Name: c.Name, Description: c.Description}
}

// CleanCategory trims and validates the input. Name uniqueness needs the
// store and is checked by the caller.
func CleanCategory(in CategoryInput) (models.Category, Errors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	errs := Errors{}
	check(in, errs)
	if errs.Any() {
		return models.Category{}, errs
	}
	return models.Category{Name: in.Name, Description: in.Description}, nil
}

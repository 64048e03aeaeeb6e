package service

import (
	"context"
	"fmt"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/repository"
)

const msgCategoryNameTaken = "Category with this Name already exists."

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, in forms.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id uint, in forms.CategoryInput) (*models.Category, error)
	// Delete removes the category and every event in it
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, in forms.CategoryInput) (*models.Category, error) {
	category, err := s.clean(ctx, in, 0)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, in forms.CategoryInput) (*models.Category, error) {
	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cleaned, err := s.clean(ctx, in, id)
	if err != nil {
		return nil, err
	}

	existing.Name = cleaned.Name
	existing.Description = cleaned.Description
	if err := s.categoryRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return existing, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryService) clean(ctx context.Context, in forms.CategoryInput, id uint) (models.Category, error) {
	category, errs := forms.CleanCategory(in)
	if errs.Any() {
		return category, invalid(errs)
	}

	taken, err := s.categoryRepo.NameTaken(ctx, category.Name, id)
	if err != nil {
		return category, fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return category, invalid(forms.Errors{"name": {msgCategoryNameTaken}})
	}
	return category, nil
}

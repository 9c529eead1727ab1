package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slug"
	"inkwell/internal/validation"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateCategoryName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Category name already exists")
	}

	categorySlug := slug.Make(name)
	if categorySlug == "" {
		return nil, models.NewValidationError("Category name must contain at least one letter or digit")
	}

	category := &models.Category{
		Name:        name,
		Slug:        categorySlug,
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates the category. Renames recompute the slug.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" && name != category.Name {
		if err := validation.ValidateCategoryName(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, models.NewConflictError("Category name already exists")
		}
		categorySlug := slug.Make(name)
		if categorySlug == "" {
			return nil, models.NewValidationError("Category name must contain at least one letter or digit")
		}
		category.Name = name
		category.Slug = categorySlug
	}
	if in.Description != "" {
		category.Description = in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	return s.categoryRepo.List(ctx, activeOnly)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory_SlugFromName(t *testing.T) {
	t.Parallel()

	categoryRepo := noopCategoryRepo()
	categoryRepo.createFn = func(_ context.Context, c *models.Category) error {
		c.ID = 1
		return nil
	}

	svc := NewCategoryService(categoryRepo)
	category, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Tech Notes!!"})
	require.NoError(t, err)
	assert.Equal(t, "Tech Notes!!", category.Name)
	assert.Equal(t, "tech-notes", category.Slug)
	assert.True(t, category.IsActive)
}

func TestCategoryService_CreateCategory_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCategoryService(noopCategoryRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateCategoryInput
	}{
		{name: "empty name", input: CreateCategoryInput{Name: ""}},
		{name: "whitespace name", input: CreateCategoryInput{Name: "   "}},
		{name: "reserved name", input: CreateCategoryInput{Name: "trending"}},
		{name: "symbols only", input: CreateCategoryInput{Name: "!!!"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateCategory(ctx, tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	t.Parallel()

	categoryRepo := noopCategoryRepo()
	categoryRepo.getByNameFn = func(_ context.Context, name string) (*models.Category, error) {
		return &models.Category{ID: 1, Name: name}, nil
	}

	svc := NewCategoryService(categoryRepo)
	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Technology"})
	assertConflictError(t, err)
}

func TestCategoryService_UpdateCategory_RenameRecomputesSlug(t *testing.T) {
	t.Parallel()

	categoryRepo := noopCategoryRepo()
	categoryRepo.getByIDFn = func(_ context.Context, id uint) (*models.Category, error) {
		return &models.Category{ID: id, Name: "Technology", Slug: "technology"}, nil
	}

	svc := NewCategoryService(categoryRepo)
	category, err := svc.UpdateCategory(context.Background(), 1, UpdateCategoryInput{Name: "Deep Tech"})
	require.NoError(t, err)
	assert.Equal(t, "Deep Tech", category.Name)
	assert.Equal(t, "deep-tech", category.Slug)
}

func TestCategoryService_UpdateCategory_RenameConflict(t *testing.T) {
	t.Parallel()

	categoryRepo := noopCategoryRepo()
	categoryRepo.getByIDFn = func(_ context.Context, id uint) (*models.Category, error) {
		return &models.Category{ID: id, Name: "Technology", Slug: "technology"}, nil
	}
	categoryRepo.getByNameFn = func(_ context.Context, name string) (*models.Category, error) {
		return &models.Category{ID: 2, Name: name}, nil
	}

	svc := NewCategoryService(categoryRepo)
	_, err := svc.UpdateCategory(context.Background(), 1, UpdateCategoryInput{Name: "Travel"})
	assertConflictError(t, err)
}

func TestCategoryService_UpdateCategory_ToggleActive(t *testing.T) {
	t.Parallel()

	categoryRepo := noopCategoryRepo()
	categoryRepo.getByIDFn = func(_ context.Context, id uint) (*models.Category, error) {
		return &models.Category{ID: id, Name: "Technology", Slug: "technology", IsActive: true}, nil
	}

	svc := NewCategoryService(categoryRepo)
	inactive := false
	category, err := svc.UpdateCategory(context.Background(), 1, UpdateCategoryInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, category.IsActive)
	// Name and slug are untouched when no rename was requested.
	assert.Equal(t, "technology", category.Slug)
}

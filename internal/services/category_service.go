package services

import (
	"fmt"

	"boardcamp/internal/models"
	"boardcamp/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory creates a category with a name no other category uses.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}

	_, exists, err := lookup(func() (*models.Category, error) { return s.repo.GetByName(name) })
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category %q already exists: %w", name, ErrConflict)
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, conflictOr(err, "category %q already exists", name)
	}
	return category, nil
}

package repositories

import (
	"boardcamp/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves every category in insertion order.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, translate(err, "failed to get all categories")
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err, "category with ID %d", id)
	}
	return &category, nil
}

// GetByName retrieves a category whose name matches exactly (case-sensitive).
func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		return nil, translate(err, "category named %q", name)
	}
	return &category, nil
}

// Create inserts a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return translate(err, "failed to create category")
	}
	return nil
}

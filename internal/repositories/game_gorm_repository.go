package repositories

import (
	"boardcamp/internal/models"

	"gorm.io/gorm"
)

// GORMGameRepository is a GORM implementation of GameRepository.
type GORMGameRepository struct {
	db *gorm.DB
}

// NewGORMGameRepository creates a new instance of GORMGameRepository.
func NewGORMGameRepository(db *gorm.DB) *GORMGameRepository {
	return &GORMGameRepository{
		db: db,
	}
}

// GetAll retrieves every game joined with its category name.
func (r *GORMGameRepository) GetAll() ([]models.GameListing, error) {
	games := []models.GameListing{}
	err := r.db.Table("games").
		Select("games.id, games.name, games.image, games.stock_total, games.category_id, games.price_per_day, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = games.category_id").
		Order("games.id").
		Scan(&games).Error
	if err != nil {
		return nil, translate(err, "failed to get all games")
	}
	return games, nil
}

// GetByID retrieves a single game by its ID.
func (r *GORMGameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, "id = ?", id).Error; err != nil {
		return nil, translate(err, "game with ID %d", id)
	}
	return &game, nil
}

// GetByName retrieves a game by its exact name.
func (r *GORMGameRepository) GetByName(name string) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, "name = ?", name).Error; err != nil {
		return nil, translate(err, "game named %q", name)
	}
	return &game, nil
}

// Create inserts a new game.
func (r *GORMGameRepository) Create(game *models.Game) error {
	if err := r.db.Omit("Category").Create(game).Error; err != nil {
		return translate(err, "failed to create game")
	}
	return nil
}

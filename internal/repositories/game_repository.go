package repositories

import "boardcamp/internal/models"

// GameRepository defines the interface for game data access.
type GameRepository interface {
	GetAll() ([]models.GameListing, error)
	GetByID(id uint) (*models.Game, error)
	GetByName(name string) (*models.Game, error)
	Create(game *models.Game) error
}

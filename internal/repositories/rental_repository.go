package repositories

import "boardcamp/internal/models"

// RentalRepository defines the interface for rental data access.
type RentalRepository interface {
	GetAll() ([]models.RentalDetail, error)
	GetByID(id uint) (*models.Rental, error)
	CountByGame(gameID uint) (int64, error)
	Create(rental *models.Rental) error
	MarkReturned(id uint, returnDate string, delayFee int) error
	Delete(id uint) error
}

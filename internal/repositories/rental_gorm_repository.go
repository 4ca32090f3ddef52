package repositories

import (
	"boardcamp/internal/models"

	"gorm.io/gorm"
)

// rentalRow is the flat shape of a rental joined with its customer, game and
// the game's category.
type rentalRow struct {
	ID            uint
	CustomerID    uint
	GameID        uint
	RentDate      string
	DaysRented    int
	ReturnDate    *string
	OriginalPrice int
	DelayFee      *int
	CustomerName  string
	GameName      string
	CategoryID    uint
	CategoryName  string
}

func (row rentalRow) detail() models.RentalDetail {
	return models.RentalDetail{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		GameID:        row.GameID,
		RentDate:      row.RentDate,
		DaysRented:    row.DaysRented,
		ReturnDate:    row.ReturnDate,
		OriginalPrice: row.OriginalPrice,
		DelayFee:      row.DelayFee,
		Customer: models.RentalCustomer{
			ID:   row.CustomerID,
			Name: row.CustomerName,
		},
		Game: models.RentalGame{
			ID:           row.GameID,
			Name:         row.GameName,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
		},
	}
}

// GORMRentalRepository is a GORM implementation of RentalRepository.
type GORMRentalRepository struct {
	db *gorm.DB
}

// NewGORMRentalRepository creates a new instance of GORMRentalRepository.
func NewGORMRentalRepository(db *gorm.DB) *GORMRentalRepository {
	return &GORMRentalRepository{
		db: db,
	}
}

// GetAll retrieves every rental joined with its customer and game.
func (r *GORMRentalRepository) GetAll() ([]models.RentalDetail, error) {
	var rows []rentalRow
	err := r.db.Table("rentals").
		Select(`rentals.id, rentals.customer_id, rentals.game_id, rentals.rent_date,
			rentals.days_rented, rentals.return_date, rentals.original_price, rentals.delay_fee,
			customers.name AS customer_name, games.name AS game_name,
			games.category_id, categories.name AS category_name`).
		Joins("JOIN customers ON customers.id = rentals.customer_id").
		Joins("JOIN games ON games.id = rentals.game_id").
		Joins("JOIN categories ON categories.id = games.category_id").
		Order("rentals.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "failed to get all rentals")
	}

	rentals := make([]models.RentalDetail, 0, len(rows))
	for _, row := range rows {
		rentals = append(rentals, row.detail())
	}
	return rentals, nil
}

// GetByID retrieves a single rental by its ID.
func (r *GORMRentalRepository) GetByID(id uint) (*models.Rental, error) {
	var rental models.Rental
	if err := r.db.First(&rental, "id = ?", id).Error; err != nil {
		return nil, translate(err, "rental with ID %d", id)
	}
	return &rental, nil
}

// CountByGame counts every rental row of a game, returned or not.
func (r *GORMRentalRepository) CountByGame(gameID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Rental{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return 0, translate(err, "failed to count rentals of game %d", gameID)
	}
	return count, nil
}

// Create inserts a new rental.
func (r *GORMRentalRepository) Create(rental *models.Rental) error {
	if err := r.db.Omit("Customer", "Game").Create(rental).Error; err != nil {
		return translate(err, "failed to create rental")
	}
	return nil
}

// MarkReturned stores the return date and delay fee of an open rental.
func (r *GORMRentalRepository) MarkReturned(id uint, returnDate string, delayFee int) error {
	res := r.db.Model(&models.Rental{}).
		Where("id = ? AND return_date IS NULL", id).
		Updates(map[string]interface{}{
			"return_date": returnDate,
			"delay_fee":   delayFee,
		})
	if res.Error != nil {
		return translate(res.Error, "failed to return rental %d", id)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "open rental with ID %d", id)
	}
	return nil
}

// Delete removes a rental by its ID.
func (r *GORMRentalRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Rental{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "failed to delete rental %d", id)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "rental with ID %d", id)
	}
	return nil
}

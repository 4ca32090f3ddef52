package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"boardcamp/internal/models"
	"boardcamp/internal/repositories"

	"github.com/google/uuid"
)

// Rental lifecycle event types.
const (
	EventRentalCreated  = "rental.created"
	EventRentalReturned = "rental.returned"
	EventRentalDeleted  = "rental.deleted"
)

// EventPublisher delivers serialized events to a message broker.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// RentalEvent is the payload published for every rental state change.
type RentalEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	RentalID      uint      `json:"rentalId"`
	CustomerID    uint      `json:"customerId"`
	GameID        uint      `json:"gameId"`
	OriginalPrice int       `json:"originalPrice"`
	DelayFee      *int      `json:"delayFee,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// RentalFilter narrows a rental listing. CustomerID wins when both are set.
type RentalFilter struct {
	CustomerID *uint
	GameID     *uint
}

// RentalService handles the rental lifecycle: create, return, delete.
type RentalService struct {
	rentals   repositories.RentalRepository
	customers repositories.CustomerRepository
	games     repositories.GameRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewRentalService creates a new RentalService. publisher may be nil, in
// which case no events are sent.
func NewRentalService(
	rentals repositories.RentalRepository,
	customers repositories.CustomerRepository,
	games repositories.GameRepository,
	publisher EventPublisher,
) *RentalService {
	return &RentalService{
		rentals:   rentals,
		customers: customers,
		games:     games,
		publisher: publisher,
		now:       time.Now,
	}
}

// WithClock replaces the source of the current date.
func (s *RentalService) WithClock(now func() time.Time) *RentalService {
	s.now = now
	return s
}

// GetRentals retrieves rentals joined with customer and game, filtered in
// memory by customer or, failing that, by game.
func (s *RentalService) GetRentals(filter RentalFilter) ([]models.RentalDetail, error) {
	rentals, err := s.rentals.GetAll()
	if err != nil {
		return nil, err
	}

	var keep func(models.RentalDetail) bool
	switch {
	case filter.CustomerID != nil:
		keep = func(r models.RentalDetail) bool { return r.CustomerID == *filter.CustomerID }
	case filter.GameID != nil:
		keep = func(r models.RentalDetail) bool { return r.GameID == *filter.GameID }
	default:
		return rentals, nil
	}

	filtered := make([]models.RentalDetail, 0, len(rentals))
	for _, rental := range rentals {
		if keep(rental) {
			filtered = append(filtered, rental)
		}
	}
	return filtered, nil
}

// CreateRental rents one copy of a game to a customer for daysRented days.
// The price is frozen at creation from the game's current price per day.
//
// Availability counts every rental row of the game, returned or not, and the
// count-then-insert is not atomic.
func (s *RentalService) CreateRental(customerID, gameID uint, daysRented int) (*models.Rental, error) {
	if daysRented <= 0 {
		return nil, fmt.Errorf("daysRented must be positive: %w", ErrInvalidInput)
	}

	_, exists, err := lookup(func() (*models.Customer, error) { return s.customers.GetByID(customerID) })
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("customer %d: %w", customerID, ErrInvalidReference)
	}

	game, exists, err := lookup(func() (*models.Game, error) { return s.games.GetByID(gameID) })
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrInvalidReference)
	}

	rented, err := s.rentals.CountByGame(gameID)
	if err != nil {
		return nil, err
	}
	if rented >= int64(game.StockTotal) {
		return nil, fmt.Errorf("game %d has %d of %d copies rented: %w", gameID, rented, game.StockTotal, ErrOutOfStock)
	}

	rental := &models.Rental{
		CustomerID:    customerID,
		GameID:        gameID,
		RentDate:      FormatRentalDate(s.now()),
		DaysRented:    daysRented,
		OriginalPrice: daysRented * game.PricePerDay,
	}
	if err := s.rentals.Create(rental); err != nil {
		return nil, err
	}

	s.publish(EventRentalCreated, rental)
	return rental, nil
}

// ReturnRental closes an open rental, stamping today's date and the delay fee.
func (s *RentalService) ReturnRental(id uint) (*models.Rental, error) {
	rental, err := s.getRental(id)
	if err != nil {
		return nil, err
	}
	if rental.Returned() {
		return nil, fmt.Errorf("rental %d: %w", id, ErrAlreadyReturned)
	}

	today := s.now()
	fee, err := DelayFee(rental.RentDate, today)
	if err != nil {
		return nil, err
	}
	returnDate := FormatRentalDate(today)

	if err := s.rentals.MarkReturned(id, returnDate, fee); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		// The row changed after our read: it was either returned or deleted.
		if _, err := s.getRental(id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("rental %d: %w", id, ErrAlreadyReturned)
	}

	rental.ReturnDate = &returnDate
	rental.DelayFee = &fee
	s.publish(EventRentalReturned, rental)
	return rental, nil
}

// DeleteRental removes a rental that has already been returned.
func (s *RentalService) DeleteRental(id uint) error {
	rental, err := s.getRental(id)
	if err != nil {
		return err
	}
	if !rental.Returned() {
		return fmt.Errorf("rental %d: %w", id, ErrNotReturned)
	}

	if err := s.rentals.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("rental %d: %w", id, ErrNotFound)
		}
		return err
	}

	s.publish(EventRentalDeleted, rental)
	return nil
}

func (s *RentalService) getRental(id uint) (*models.Rental, error) {
	rental, err := s.rentals.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("rental %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rental, nil
}

// publish sends a lifecycle event. Failures are logged and never surface to
// the caller.
func (s *RentalService) publish(eventType string, rental *models.Rental) {
	if s.publisher == nil {
		return
	}

	event := RentalEvent{
		ID:            uuid.New().String(),
		Type:          eventType,
		RentalID:      rental.ID,
		CustomerID:    rental.CustomerID,
		GameID:        rental.GameID,
		OriginalPrice: rental.OriginalPrice,
		DelayFee:      rental.DelayFee,
		OccurredAt:    s.now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for rental %d: %v", eventType, rental.ID, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for rental %d: %v", eventType, rental.ID, err)
	}
}

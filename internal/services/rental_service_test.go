package services_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"boardcamp/internal/models"
	"boardcamp/internal/repositories"
	"boardcamp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rentalFixture struct {
	rentals   *MockRentalRepository
	customers *MockCustomerRepository
	games     *MockGameRepository
	publisher *MockPublisher
	service   *services.RentalService
	now       time.Time
}

func newRentalFixture() *rentalFixture {
	f := &rentalFixture{
		rentals:   new(MockRentalRepository),
		customers: new(MockCustomerRepository),
		games:     new(MockGameRepository),
		publisher: new(MockPublisher),
		now:       time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
	}
	f.service = services.NewRentalService(f.rentals, f.customers, f.games, f.publisher).
		WithClock(func() time.Time { return f.now })
	return f
}

func (f *rentalFixture) assertExpectations(t *testing.T) {
	f.rentals.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.games.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func strPtr(s string) *string { return &s }

func TestRentalService_GetRentals(t *testing.T) {
	f := newRentalFixture()
	all := []models.RentalDetail{
		{ID: 1, CustomerID: 1, GameID: 1},
		{ID: 2, CustomerID: 1, GameID: 2},
		{ID: 3, CustomerID: 2, GameID: 2},
	}
	f.rentals.On("GetAll").Return(all, nil)

	result, err := f.service.GetRentals(services.RentalFilter{})
	assert.NoError(t, err)
	assert.Equal(t, all, result)

	customerID, gameID := uint(1), uint(2)
	result, err = f.service.GetRentals(services.RentalFilter{CustomerID: &customerID})
	assert.NoError(t, err)
	assert.Equal(t, []models.RentalDetail{all[0], all[1]}, result)

	result, err = f.service.GetRentals(services.RentalFilter{GameID: &gameID})
	assert.NoError(t, err)
	assert.Equal(t, []models.RentalDetail{all[1], all[2]}, result)

	otherCustomer := uint(2)
	result, err = f.service.GetRentals(services.RentalFilter{CustomerID: &otherCustomer, GameID: &customerID})
	assert.NoError(t, err)
	assert.Equal(t, []models.RentalDetail{all[2]}, result)
}

func TestRentalService_CreateRental(t *testing.T) {
	f := newRentalFixture()
	game := &models.Game{ID: 1, Name: "Catan", StockTotal: 2, PricePerDay: 5}

	f.customers.On("GetByID", uint(1)).Return(&models.Customer{ID: 1}, nil).Once()
	f.games.On("GetByID", uint(1)).Return(game, nil).Once()
	f.rentals.On("CountByGame", uint(1)).Return(int64(1), nil).Once()
	f.rentals.On("Create", mock.AnythingOfType("*models.Rental")).
		Run(func(args mock.Arguments) { args.Get(0).(*models.Rental).ID = 10 }).
		Return(nil).Once()
	f.publisher.On("Publish", services.EventRentalCreated, mock.Anything).Return(nil).Once()

	rental, err := f.service.CreateRental(1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(10), rental.ID)
	assert.Equal(t, 15, rental.OriginalPrice)
	assert.Equal(t, "2024-3-5", rental.RentDate)
	assert.Equal(t, 3, rental.DaysRented)
	assert.Nil(t, rental.ReturnDate)
	assert.Nil(t, rental.DelayFee)

	body := f.publisher.Calls[0].Arguments.Get(1).([]byte)
	var event services.RentalEvent
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, services.EventRentalCreated, event.Type)
	assert.Equal(t, uint(10), event.RentalID)
	assert.NotEmpty(t, event.ID)

	f.assertExpectations(t)
}

func TestRentalService_CreateRentalRejections(t *testing.T) {
	t.Run("non-positive days", func(t *testing.T) {
		f := newRentalFixture()
		_, err := f.service.CreateRental(1, 1, 0)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newRentalFixture()
		f.customers.On("GetByID", uint(9)).Return(nil, errNotFound).Once()
		_, err := f.service.CreateRental(9, 1, 1)
		assert.ErrorIs(t, err, services.ErrInvalidReference)
		f.assertExpectations(t)
	})

	t.Run("unknown game", func(t *testing.T) {
		f := newRentalFixture()
		f.customers.On("GetByID", uint(1)).Return(&models.Customer{ID: 1}, nil).Once()
		f.games.On("GetByID", uint(9)).Return(nil, errNotFound).Once()
		_, err := f.service.CreateRental(1, 9, 1)
		assert.ErrorIs(t, err, services.ErrInvalidReference)
		f.assertExpectations(t)
	})

	t.Run("every copy rented", func(t *testing.T) {
		f := newRentalFixture()
		f.customers.On("GetByID", uint(1)).Return(&models.Customer{ID: 1}, nil).Once()
		f.games.On("GetByID", uint(1)).Return(&models.Game{ID: 1, StockTotal: 1, PricePerDay: 5}, nil).Once()
		f.rentals.On("CountByGame", uint(1)).Return(int64(1), nil).Once()
		_, err := f.service.CreateRental(1, 1, 1)
		assert.ErrorIs(t, err, services.ErrOutOfStock)
		f.assertExpectations(t)
	})
}

func TestRentalService_CreateRentalWithoutPublisher(t *testing.T) {
	rentals := new(MockRentalRepository)
	customers := new(MockCustomerRepository)
	games := new(MockGameRepository)
	service := services.NewRentalService(rentals, customers, games, nil)

	customers.On("GetByID", uint(1)).Return(&models.Customer{ID: 1}, nil).Once()
	games.On("GetByID", uint(1)).Return(&models.Game{ID: 1, StockTotal: 1, PricePerDay: 2}, nil).Once()
	rentals.On("CountByGame", uint(1)).Return(int64(0), nil).Once()
	rentals.On("Create", mock.AnythingOfType("*models.Rental")).Return(nil).Once()

	rental, err := service.CreateRental(1, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, rental.OriginalPrice)
}

func TestRentalService_PublishFailureIsIgnored(t *testing.T) {
	f := newRentalFixture()
	f.customers.On("GetByID", uint(1)).Return(&models.Customer{ID: 1}, nil).Once()
	f.games.On("GetByID", uint(1)).Return(&models.Game{ID: 1, StockTotal: 1, PricePerDay: 2}, nil).Once()
	f.rentals.On("CountByGame", uint(1)).Return(int64(0), nil).Once()
	f.rentals.On("Create", mock.AnythingOfType("*models.Rental")).Return(nil).Once()
	f.publisher.On("Publish", services.EventRentalCreated, mock.Anything).Return(fmt.Errorf("broker down")).Once()

	_, err := f.service.CreateRental(1, 1, 1)
	assert.NoError(t, err)
	f.assertExpectations(t)
}

func TestRentalService_ReturnRental(t *testing.T) {
	f := newRentalFixture()
	f.now = time.Date(2024, time.March, 9, 8, 0, 0, 0, time.UTC)

	f.rentals.On("GetByID", uint(1)).Return(&models.Rental{ID: 1, RentDate: "2024-3-5", DaysRented: 3, OriginalPrice: 15}, nil).Once()
	f.rentals.On("MarkReturned", uint(1), "2024-3-9", 4).Return(nil).Once()
	f.publisher.On("Publish", services.EventRentalReturned, mock.Anything).Return(nil).Once()

	rental, err := f.service.ReturnRental(1)
	require.NoError(t, err)
	assert.Equal(t, "2024-3-9", *rental.ReturnDate)
	assert.Equal(t, 4, *rental.DelayFee)

	// Already returned
	f.rentals.On("GetByID", uint(1)).Return(&models.Rental{ID: 1, RentDate: "2024-3-5", ReturnDate: strPtr("2024-3-9")}, nil).Once()
	_, err = f.service.ReturnRental(1)
	assert.ErrorIs(t, err, services.ErrAlreadyReturned)

	// Unknown rental
	f.rentals.On("GetByID", uint(2)).Return(nil, errNotFound).Once()
	_, err = f.service.ReturnRental(2)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Returned concurrently between read and write
	f.rentals.On("GetByID", uint(3)).Return(&models.Rental{ID: 3, RentDate: "2024-3-1"}, nil).Once()
	f.rentals.On("MarkReturned", uint(3), "2024-3-9", 8).Return(fmt.Errorf("update: %w", repositories.ErrNotFound)).Once()
	f.rentals.On("GetByID", uint(3)).Return(&models.Rental{ID: 3, RentDate: "2024-3-1", ReturnDate: strPtr("2024-3-8")}, nil).Once()
	_, err = f.service.ReturnRental(3)
	assert.ErrorIs(t, err, services.ErrAlreadyReturned)

	// Deleted concurrently between read and write
	f.rentals.On("GetByID", uint(4)).Return(&models.Rental{ID: 4, RentDate: "2024-3-1"}, nil).Once()
	f.rentals.On("MarkReturned", uint(4), "2024-3-9", 8).Return(fmt.Errorf("update: %w", repositories.ErrNotFound)).Once()
	f.rentals.On("GetByID", uint(4)).Return(nil, fmt.Errorf("lookup: %w", repositories.ErrNotFound)).Once()
	_, err = f.service.ReturnRental(4)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrAlreadyReturned)

	f.assertExpectations(t)
}

func TestRentalService_ReturnAcrossMonthBoundary(t *testing.T) {
	f := newRentalFixture()
	f.now = time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)

	f.rentals.On("GetByID", uint(1)).Return(&models.Rental{ID: 1, RentDate: "2024-3-30"}, nil).Once()
	f.rentals.On("MarkReturned", uint(1), "2024-4-2", -28).Return(nil).Once()
	f.publisher.On("Publish", services.EventRentalReturned, mock.Anything).Return(nil).Once()

	rental, err := f.service.ReturnRental(1)
	require.NoError(t, err)
	assert.Equal(t, -28, *rental.DelayFee)
	f.assertExpectations(t)
}

func TestRentalService_DeleteRental(t *testing.T) {
	f := newRentalFixture()

	// Still out
	f.rentals.On("GetByID", uint(1)).Return(&models.Rental{ID: 1, RentDate: "2024-3-5"}, nil).Once()
	assert.ErrorIs(t, f.service.DeleteRental(1), services.ErrNotReturned)

	// Returned
	f.rentals.On("GetByID", uint(1)).Return(&models.Rental{ID: 1, RentDate: "2024-3-5", ReturnDate: strPtr("2024-3-6")}, nil).Once()
	f.rentals.On("Delete", uint(1)).Return(nil).Once()
	f.publisher.On("Publish", services.EventRentalDeleted, mock.Anything).Return(nil).Once()
	assert.NoError(t, f.service.DeleteRental(1))

	// Gone
	f.rentals.On("GetByID", uint(1)).Return(nil, errNotFound).Once()
	assert.ErrorIs(t, f.service.DeleteRental(1), services.ErrNotFound)

	f.assertExpectations(t)
}

package services_test

import (
	"boardcamp/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

// MockGameRepository is a mock implementation of repositories.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) GetAll() ([]models.GameListing, error) {
	args := m.Called()
	return args.Get(0).([]models.GameListing), args.Error(1)
}

func (m *MockGameRepository) GetByID(id uint) (*models.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetByName(name string) (*models.Game, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) Create(game *models.Game) error {
	args := m.Called(game)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	args := m.Called()
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByCPF(cpf string) (*models.Customer, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

// MockRentalRepository is a mock implementation of repositories.RentalRepository
type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) GetAll() ([]models.RentalDetail, error) {
	args := m.Called()
	return args.Get(0).([]models.RentalDetail), args.Error(1)
}

func (m *MockRentalRepository) GetByID(id uint) (*models.Rental, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}

func (m *MockRentalRepository) CountByGame(gameID uint) (int64, error) {
	args := m.Called(gameID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRentalRepository) Create(rental *models.Rental) error {
	args := m.Called(rental)
	return args.Error(0)
}

func (m *MockRentalRepository) MarkReturned(id uint, returnDate string, delayFee int) error {
	args := m.Called(id, returnDate, delayFee)
	return args.Error(0)
}

func (m *MockRentalRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(eventType string, body []byte) error {
	args := m.Called(eventType, body)
	return args.Error(0)
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"boardcamp/internal/models"
	"boardcamp/internal/repositories"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetCustomers retrieves all customers, or only those whose CPF starts with
// cpfPrefix when it is not empty.
func (s *CustomerService) GetCustomers(cpfPrefix string) ([]models.Customer, error) {
	customers, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if cpfPrefix == "" {
		return customers, nil
	}

	filtered := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		if strings.HasPrefix(customer.CPF, cpfPrefix) {
			filtered = append(filtered, customer)
		}
	}
	return filtered, nil
}

// GetCustomerByID retrieves a single customer.
func (s *CustomerService) GetCustomerByID(id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return customer, nil
}

// CreateCustomer creates a customer whose CPF is not yet registered.
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	_, exists, err := lookup(func() (*models.Customer, error) { return s.repo.GetByCPF(customer.CPF) })
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("cpf %s already registered: %w", customer.CPF, ErrConflict)
	}

	if err := s.repo.Create(customer); err != nil {
		return conflictOr(err, "cpf %s already registered", customer.CPF)
	}
	return nil
}

// UpdateCustomer replaces every field of the customer with customer.ID. The
// CPF may stay the same, but may not belong to another customer. Updating an
// id nobody has succeeds without touching any row.
func (s *CustomerService) UpdateCustomer(customer *models.Customer) error {
	owner, exists, err := lookup(func() (*models.Customer, error) { return s.repo.GetByCPF(customer.CPF) })
	if err != nil {
		return err
	}
	if exists && owner.ID != customer.ID {
		return fmt.Errorf("cpf %s belongs to customer %d: %w", customer.CPF, owner.ID, ErrConflict)
	}

	if err := s.repo.Update(customer); err != nil {
		return conflictOr(err, "cpf %s already registered", customer.CPF)
	}
	return nil
}

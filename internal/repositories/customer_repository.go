package repositories

import "boardcamp/internal/models"

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	GetByCPF(cpf string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
}

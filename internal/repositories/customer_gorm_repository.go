package repositories

import (
	"boardcamp/internal/models"

	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// GetAll retrieves every customer.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.Order("id").Find(&customers).Error; err != nil {
		return nil, translate(err, "failed to get all customers")
	}
	return customers, nil
}

// GetByID retrieves a single customer by its ID.
func (r *GORMCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate(err, "customer with ID %d", id)
	}
	return &customer, nil
}

// GetByCPF retrieves the customer owning the given CPF.
func (r *GORMCustomerRepository) GetByCPF(cpf string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "cpf = ?", cpf).Error; err != nil {
		return nil, translate(err, "customer with CPF %s", cpf)
	}
	return &customer, nil
}

// Create inserts a new customer.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return translate(err, "failed to create customer")
	}
	return nil
}

// Update replaces every field of the customer with customer.ID. An id that
// matches no row updates nothing and is not an error.
func (r *GORMCustomerRepository) Update(customer *models.Customer) error {
	res := r.db.Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Select("name", "phone", "cpf", "birthday").
		Updates(customer)
	if res.Error != nil {
		return translate(res.Error, "failed to update customer %d", customer.ID)
	}
	return nil
}

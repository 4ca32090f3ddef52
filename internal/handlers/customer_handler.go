package handlers

import (
	"boardcamp/internal/models"
	"boardcamp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", h.HandleGetCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomerByID)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
}

// customerRequest is the body of both create and full-replace update.
type customerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,number,min=10,max=11"`
	CPF      string `json:"cpf" validate:"required,number,len=11"`
	Birthday string `json:"birthday" validate:"required,birthday"`
}

func (r customerRequest) toModel(id uint) *models.Customer {
	// Validation already ran the same parse.
	birthday, _ := parseBirthday(r.Birthday)
	return &models.Customer{
		ID:       id,
		Name:     r.Name,
		Phone:    r.Phone,
		CPF:      r.CPF,
		Birthday: birthday,
	}
}

// HandleGetCustomers lists customers, optionally narrowed by ?cpf= prefix.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetCustomers(c.Query("cpf"))
	if err != nil {
		return serviceError(c, "retrieve customers", err)
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badID(c, "id")
	}

	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return serviceError(c, "retrieve customer", err)
	}
	return c.JSON(customer)
}

// HandleCreateCustomer registers a new customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req customerRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	if err := h.service.CreateCustomer(req.toModel(0)); err != nil {
		return serviceError(c, "create customer", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdateCustomer replaces every field of an existing customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badID(c, "id")
	}

	var req customerRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	if err := h.service.UpdateCustomer(req.toModel(id)); err != nil {
		return serviceError(c, "update customer", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

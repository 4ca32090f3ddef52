package handlers

import (
	"boardcamp/internal/models"
	"boardcamp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RentalHandler handles HTTP requests for rentals.
type RentalHandler struct {
	service  *services.RentalService
	validate *validator.Validate
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(service *services.RentalService) *RentalHandler {
	return &RentalHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the rental routes with the Fiber app.
func (h *RentalHandler) RegisterRoutes(router fiber.Router) {
	rentalRoutes := router.Group("/rentals")
	rentalRoutes.Get("/", h.HandleGetRentals)
	rentalRoutes.Post("/", h.HandleCreateRental)
	rentalRoutes.Post("/:id/return", h.HandleReturnRental)
	rentalRoutes.Delete("/:id", h.HandleDeleteRental)
}

type createRentalRequest struct {
	CustomerID uint `json:"customerId" validate:"required"`
	GameID     uint `json:"gameId" validate:"required"`
	DaysRented int  `json:"daysRented" validate:"gt=0"`
}

// HandleGetRentals lists rentals, optionally for one ?customerId= or ?gameId=.
// A filter value that is not an id matches no rental.
func (h *RentalHandler) HandleGetRentals(c *fiber.Ctx) error {
	var filter services.RentalFilter
	if raw := c.Query("customerId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return c.JSON([]models.RentalDetail{})
		}
		filter.CustomerID = &id
	} else if raw := c.Query("gameId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return c.JSON([]models.RentalDetail{})
		}
		filter.GameID = &id
	}

	rentals, err := h.service.GetRentals(filter)
	if err != nil {
		return serviceError(c, "retrieve rentals", err)
	}
	return c.JSON(rentals)
}

// HandleCreateRental rents a game copy to a customer.
func (h *RentalHandler) HandleCreateRental(c *fiber.Ctx) error {
	var req createRentalRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	if _, err := h.service.CreateRental(req.CustomerID, req.GameID, req.DaysRented); err != nil {
		return serviceError(c, "create rental", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleReturnRental marks a rental as returned.
func (h *RentalHandler) HandleReturnRental(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badID(c, "id")
	}

	if _, err := h.service.ReturnRental(id); err != nil {
		return serviceError(c, "return rental", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleDeleteRental deletes a returned rental.
func (h *RentalHandler) HandleDeleteRental(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badID(c, "id")
	}

	if err := h.service.DeleteRental(id); err != nil {
		return serviceError(c, "delete rental", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

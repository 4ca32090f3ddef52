package handlers

import (
	"boardcamp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// HandleGetCategories lists every category.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return serviceError(c, "retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a category with a unique name.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	if _, err := h.service.CreateCategory(req.Name); err != nil {
		return serviceError(c, "create category", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

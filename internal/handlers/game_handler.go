package handlers

import (
	"boardcamp/internal/models"
	"boardcamp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GameHandler handles HTTP requests for games.
type GameHandler struct {
	service  *services.GameService
	validate *validator.Validate
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service *services.GameService) *GameHandler {
	return &GameHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the game routes with the Fiber app.
func (h *GameHandler) RegisterRoutes(router fiber.Router) {
	gameRoutes := router.Group("/games")
	gameRoutes.Get("/", h.HandleGetGames)
	gameRoutes.Post("/", h.HandleCreateGame)
}

type createGameRequest struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image"`
	StockTotal  int    `json:"stockTotal" validate:"gte=1"`
	PricePerDay int    `json:"pricePerDay" validate:"gte=1"`
	CategoryID  uint   `json:"categoryId" validate:"required"`
}

// HandleGetGames lists games, optionally narrowed by ?name= prefix.
func (h *GameHandler) HandleGetGames(c *fiber.Ctx) error {
	games, err := h.service.GetGames(c.Query("name"))
	if err != nil {
		return serviceError(c, "retrieve games", err)
	}
	return c.JSON(games)
}

// HandleCreateGame creates a game in an existing category.
func (h *GameHandler) HandleCreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	game := &models.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	}
	if err := h.service.CreateGame(game); err != nil {
		return serviceError(c, "create game", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

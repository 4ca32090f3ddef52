package app

import (
	"time"

	"boardcamp/internal/handlers"
	"boardcamp/internal/middleware"
	"boardcamp/internal/repositories"
	"boardcamp/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP app is built from.
type Deps struct {
	DB        *gorm.DB
	Publisher services.EventPublisher // optional
	Clock     func() time.Time        // optional, defaults to time.Now
	AccessLog bool
}

// New wires repositories, services and handlers on top of deps.DB and
// returns the Fiber app serving the rental API.
func New(deps Deps) *fiber.App {
	categoryRepo := repositories.NewGORMCategoryRepository(deps.DB)
	gameRepo := repositories.NewGORMGameRepository(deps.DB)
	customerRepo := repositories.NewGORMCustomerRepository(deps.DB)
	rentalRepo := repositories.NewGORMRentalRepository(deps.DB)

	categoryService := services.NewCategoryService(categoryRepo)
	gameService := services.NewGameService(gameRepo, categoryRepo)
	customerService := services.NewCustomerService(customerRepo)
	rentalService := services.NewRentalService(rentalRepo, customerRepo, gameRepo, deps.Publisher)
	if deps.Clock != nil {
		rentalService.WithClock(deps.Clock)
	}

	app := fiber.New()

	app.Use(middleware.RequestID())
	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:request_id} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	handlers.NewCategoryHandler(categoryService).RegisterRoutes(app)
	handlers.NewGameHandler(gameService).RegisterRoutes(app)
	handlers.NewCustomerHandler(customerService).RegisterRoutes(app)
	handlers.NewRentalHandler(rentalService).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"boardcamp/internal/app"
	"boardcamp/internal/config"
	"boardcamp/internal/database"
	"boardcamp/internal/services"
	"boardcamp/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// --- Rental events ---
	// Publishing is optional; the API works without a broker.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			log.Printf("Warning: rental events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient

			if cfg.RabbitMQAuditLog {
				err := mqClient.Consume(func(msg amqp.Delivery) error {
					log.Printf("Rental event %s: %s", msg.Type, msg.Body)
					return nil
				})
				if err != nil {
					log.Printf("Failed to start rental event consumer: %v", err)
				}
			}
		}
	}

	server := app.New(app.Deps{
		DB:        db,
		Publisher: publisher,
		AccessLog: true,
	})

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server Online on %s", cfg.AppPort)
		if err := server.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

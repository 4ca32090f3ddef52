package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting the service reads at startup.
type Config struct {
	AppPort          string
	DatabaseDriver   string
	DatabaseURL      string
	AutoMigrate      bool
	RabbitMQURL      string
	RabbitMQQueue    string
	RabbitMQAuditLog bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":4000")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "host=127.0.0.1 user=postgres password=postgres dbname=boardcamp port=5432 sslmode=disable")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "rental_events")
	v.SetDefault("RABBITMQ_AUDIT_LOG", false)
}

// Load reads the configuration from environment variables, falling back to
// defaults.
func Load() Config {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	port := v.GetString("APP_PORT")
	if port != "" && !strings.Contains(port, ":") {
		port = ":" + port
	}
	return Config{
		AppPort:          port,
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		AutoMigrate:      v.GetBool("DATABASE_AUTO_MIGRATE"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:    v.GetString("RABBITMQ_QUEUE"),
		RabbitMQAuditLog: v.GetBool("RABBITMQ_AUDIT_LOG"),
	}
}

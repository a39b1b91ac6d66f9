package cmd

import (
	"fmt"
	"strings"
)

// Config carries everything the service needs from the environment.
// Parsed with caarlos0/env; a local .env file is loaded first when present.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaHosts              string `env:"KAFKA_HOST,required"`
	KafkaNotificationsTopic string `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"notifications"`
}

// PgDSN assembles the postgres connection string.
func (c Config) PgDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// KafkaBrokers splits the comma-separated broker list.
func (c Config) KafkaBrokers() []string {
	return strings.Split(c.KafkaHosts, ",")
}

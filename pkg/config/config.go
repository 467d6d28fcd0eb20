package config

import (
	"fmt"

	"github.com/Shuang777/lending-club/pkg/postgresql"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	App           AppConfig           `envPrefix:"APP_"`
	Postgres      postgresql.Config   `envPrefix:"POSTGRES_"`
	Scraper       ScraperConfig       `envPrefix:"SCRAPER_"`
	SnapshotKafka SnapshotKafkaConfig `envPrefix:"SNAPSHOT_KAFKA_"`
	Alert         AlertConfig         `envPrefix:"ALERT_"`
	Batch         BatchConfig         `envPrefix:"BATCH_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"lc-order-history"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// ScraperConfig represents the marketplace scrape client configuration.
type ScraperConfig struct {
	BaseURL    string `env:"BASE_URL" envDefault:"https://www.lendingclub.com"`
	Cookie     string `env:"COOKIE"`
	UserAgent  string `env:"USER_AGENT" envDefault:"Mozilla/5.0"`
	PageSize   int    `env:"PAGE_SIZE" envDefault:"250"`
	MaxRecords int    `env:"MAX_RECORDS" envDefault:"0"`
}

// SnapshotKafkaConfig represents the listing snapshot Kafka configuration.
type SnapshotKafkaConfig struct {
	Brokers         []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic           string   `env:"TOPIC" envDefault:"listing-snapshots"`
	ConsumerGroup   string   `env:"CONSUMER_GROUP" envDefault:"order-history"`
	ConsumerTimeout int      `env:"CONSUMER_TIMEOUT" envDefault:"5"`
	MaxRetries      int      `env:"MAX_RETRIES" envDefault:"3"`
}

// AlertConfig represents the alert mail configuration.
type AlertConfig struct {
	SMTPHost string   `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort int      `env:"SMTP_PORT" envDefault:"587"`
	Username string   `env:"USERNAME"`
	Password string   `env:"PASSWORD"`
	From     string   `env:"FROM" envDefault:"order-history@localhost"`
	To       []string `env:"TO" envSeparator:","`
}

// BatchConfig represents the batch update driver configuration.
type BatchConfig struct {
	ErrorThreshold int `env:"ERROR_THRESHOLD" envDefault:"10"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

package config

import (
	"os"
	"strconv"
	"strings"

	"Folks_Community/internal/pkg"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MySQLDSN      string
	JWTSecret     string
	SnowflakeNode int64
	KafkaBrokers  []string
	KafkaTopic    string
	SMTP          pkg.SMTPConfig
}

// Load reads the environment, with .env overlay for development.
// Defaults are insecure and meant for local runs only.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8000"),
		MySQLDSN:      getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/community?charset=utf8mb4&parseTime=True"),
		JWTSecret:     strings.TrimSpace(getenv("JWT_SECRET", "secret-key")),
		KafkaTopic:    getenv("KAFKA_TOPIC", "community-lifecycle"),
		SnowflakeNode: 1,
	}

	if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.SnowflakeNode = n
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}

	cfg.SMTP = pkg.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

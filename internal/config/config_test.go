package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MYSQL_DSN", "JWT_SECRET", "KAFKA_BROKERS", "KAFKA_TOPIC", "SNOWFLAKE_NODE", "SMTP_HOST", "SMTP_FROM"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "secret-key", cfg.JWTSecret)
	assert.Equal(t, "community-lifecycle", cfg.KafkaTopic)
	assert.Equal(t, int64(1), cfg.SnowflakeNode)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.SMTP.Configured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", " padded-secret ")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("SMTP_HOST", "smtp.x.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_FROM", "no-reply@x.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "padded-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, int64(7), cfg.SnowflakeNode)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Configured())
}

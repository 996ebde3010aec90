package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "supersecret")
		t.Setenv("PAYMENT_APIKEY", "pay_secret")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "supersecret", cfg.JWTSecret)
		assert.Equal(t, "pay_secret", cfg.PaymentAPIKey)
	})

	t.Run("Defaults applied when optional vars missing", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "supersecret")
		t.Setenv("APP_PORT", "")
		t.Setenv("UPLOAD_DIR", "")
		t.Setenv("CORS_ORIGIN", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "./uploads", cfg.UploadDir)
		assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	})
}

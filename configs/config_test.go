package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDatabaseConfig(t *testing.T) {
	t.Run("Uses the connection string when set", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("CORNER_STORE_DB_CONNECTION_STRING", "postgres://store:secret@db:5432/cornerstore")
		t.Setenv("DB_SEED", "false")

		cfg := LoadDatabaseConfig()

		assert.Equal(t, "postgres", cfg.Driver)
		assert.Equal(t, "postgres://store:secret@db:5432/cornerstore", cfg.ConnectionString)
		assert.False(t, cfg.Seed)
	})

	t.Run("Builds a DSN from parts otherwise", func(t *testing.T) {
		t.Setenv("CORNER_STORE_DB_CONNECTION_STRING", "")
		t.Setenv("POSTGRES_HOST", "db")
		t.Setenv("POSTGRES_DB", "shop")
		t.Setenv("DB_SEED", "not-a-bool")

		cfg := LoadDatabaseConfig()

		assert.Contains(t, cfg.ConnectionString, "host=db")
		assert.Contains(t, cfg.ConnectionString, "dbname=shop")
		assert.Contains(t, cfg.ConnectionString, "TimeZone=UTC")
		assert.True(t, cfg.Seed)
	})

	t.Run("Falls back to sqlite defaults", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("SQLITE_PATH", "")

		cfg := LoadDatabaseConfig()

		assert.Equal(t, "sqlite", cfg.Driver)
		assert.Equal(t, "cornerstore.db", cfg.SQLitePath)
	})
}

func TestReceiptConfigEnabled(t *testing.T) {
	t.Setenv("RECEIPT_SENDER_EMAIL", "till@example.com")
	t.Setenv("RECEIPT_RECIPIENT_EMAIL", "")

	assert.False(t, LoadReceiptConfig().Enabled())

	t.Setenv("RECEIPT_RECIPIENT_EMAIL", "owner@example.com")

	cfg := LoadReceiptConfig()
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/careertrack")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/careertrack")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "careertrack-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadSize)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "job_postings", cfg.ESJobsIndex)
}

func TestCORSOrigins_SplitsAndTrims(t *testing.T) {
	c := &Config{CORSAllowedOrigins: "http://localhost:5173, https://app.example.com ,"}
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, c.CORSOrigins())
}

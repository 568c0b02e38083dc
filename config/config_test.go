package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "softwarelabdb", cfg.Database.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.Server.CORSOrigins)
}

func TestLoadMissingMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb+srv://user:pw@cluster0.example.net")
	t.Setenv("MONGODB_DB", "labdb")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://frontend.example.com, http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "labdb", cfg.Database.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, []string{"https://frontend.example.com", "http://localhost:5173"}, cfg.Server.CORSOrigins)
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " a.example.com ,, b.example.com ")

	got := getEnvAsSlice("TEST_ORIGINS", []string{"fallback"})
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, got)
}

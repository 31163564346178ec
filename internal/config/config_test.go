package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIConfigDefaults(t *testing.T) {
	t.Setenv("ALGOARENA_API_URL", "")
	t.Setenv("API_REQUEST_TIMEOUT_SEC", "")
	t.Setenv("API_EVALUATION_TIMEOUT_SEC", "")

	cfg := NewAPIConfig()
	assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.EvaluationTimeout)
}

func TestAPIConfigOverrides(t *testing.T) {
	t.Setenv("ALGOARENA_API_URL", "https://api.example.com/api")
	t.Setenv("API_REQUEST_TIMEOUT_SEC", "5")
	t.Setenv("API_EVALUATION_TIMEOUT_SEC", "120")

	cfg := NewAPIConfig()
	assert.Equal(t, "https://api.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 120*time.Second, cfg.EvaluationTimeout)
}

func TestAPIConfigIgnoresBadTimeouts(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT_SEC", "zero")
	t.Setenv("API_EVALUATION_TIMEOUT_SEC", "-3")

	cfg := NewAPIConfig()
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.EvaluationTimeout)
}

func TestLocalStoreConfigUsesStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ALGOARENA_STATE_DIR", dir)

	cfg := NewLocalStoreConfig()
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.DatabasePath)
	assert.Equal(t, filepath.Join(dir, "state.key"), cfg.KeyPath)
}

func TestSystemConfigDebugMode(t *testing.T) {
	t.Setenv("DEBUG_MODE", "true")
	assert.True(t, NewSystemConfig().DebugMode)

	t.Setenv("DEBUG_MODE", "")
	assert.False(t, NewSystemConfig().DebugMode)
}

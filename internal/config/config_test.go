package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INEGI_INDICADORES_TOKEN", "ind-token")
	t.Setenv("INEGI_DENUE_TOKEN", "denue-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ind-token", cfg.IndicadoresToken)
	assert.Equal(t, "denue-token", cfg.DENUEToken)
	assert.Equal(t, "https://www.inegi.org.mx/app/api/indicadores/desarrolladores/jsonxml", cfg.IndicadoresBaseURL)
	assert.Equal(t, "https://www.inegi.org.mx/app/api/denue/v1/consulta", cfg.DENUEBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadMissingIndicatorsToken(t *testing.T) {
	t.Setenv("INEGI_INDICADORES_TOKEN", "")
	t.Setenv("INEGI_DENUE_TOKEN", "denue-token")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INEGI_INDICADORES_TOKEN")
}

func TestLoadMissingDENUEToken(t *testing.T) {
	t.Setenv("INEGI_INDICADORES_TOKEN", "ind-token")
	t.Setenv("INEGI_DENUE_TOKEN", "")
	t.Setenv("INEGI_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INEGI_DENUE_TOKEN")
}

func TestLoadLegacyTokenFallback(t *testing.T) {
	t.Setenv("INEGI_INDICADORES_TOKEN", "ind-token")
	t.Setenv("INEGI_DENUE_TOKEN", "")
	t.Setenv("INEGI_TOKEN", "legacy-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", cfg.DENUEToken)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INEGI_INDICADORES_TOKEN", "ind-token")
	t.Setenv("INEGI_DENUE_TOKEN", "denue-token")
	t.Setenv("INEGI_DENUE_BASE_URL", "http://localhost:9999/denue/")
	t.Setenv("INEGI_HTTP_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	// Trailing slash is stripped so positional joins stay clean.
	assert.Equal(t, "http://localhost:9999/denue", cfg.DENUEBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// APIVersion is the INEGI indicators API version segment.
const APIVersion = "2.0"

// Config holds process-wide settings. Built once at startup and passed
// explicitly into clients; never mutated afterwards.
type Config struct {
	// IndicadoresToken authenticates against the indicators (BISE) API.
	IndicadoresToken string
	// DENUEToken authenticates against the DENUE business directory API.
	DENUEToken string

	IndicadoresBaseURL string
	DENUEBaseURL       string

	// HTTPTimeout bounds every individual upstream call.
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment. Missing tokens are a fatal
// startup error, not a deferred failure at first call.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("indicadores_base_url", "https://www.inegi.org.mx/app/api/indicadores/desarrolladores/jsonxml")
	v.SetDefault("denue_base_url", "https://www.inegi.org.mx/app/api/denue/v1/consulta")
	v.SetDefault("http_timeout_seconds", 30)

	v.AutomaticEnv()
	_ = v.BindEnv("inegi_indicadores_token", "INEGI_INDICADORES_TOKEN")
	_ = v.BindEnv("inegi_denue_token", "INEGI_DENUE_TOKEN")
	_ = v.BindEnv("inegi_token", "INEGI_TOKEN")
	_ = v.BindEnv("indicadores_base_url", "INEGI_INDICADORES_BASE_URL")
	_ = v.BindEnv("denue_base_url", "INEGI_DENUE_BASE_URL")
	_ = v.BindEnv("http_timeout_seconds", "INEGI_HTTP_TIMEOUT_SECONDS")

	cfg := Config{
		IndicadoresToken:   strings.TrimSpace(v.GetString("inegi_indicadores_token")),
		DENUEToken:         strings.TrimSpace(v.GetString("inegi_denue_token")),
		IndicadoresBaseURL: strings.TrimSuffix(v.GetString("indicadores_base_url"), "/"),
		DENUEBaseURL:       strings.TrimSuffix(v.GetString("denue_base_url"), "/"),
		HTTPTimeout:        time.Duration(v.GetInt("http_timeout_seconds")) * time.Second,
	}

	// INEGI_TOKEN is an accepted legacy fallback for the DENUE token.
	if cfg.DENUEToken == "" {
		cfg.DENUEToken = strings.TrimSpace(v.GetString("inegi_token"))
	}

	if cfg.IndicadoresToken == "" {
		return Config{}, fmt.Errorf("missing INEGI indicators token: set INEGI_INDICADORES_TOKEN")
	}
	if cfg.DENUEToken == "" {
		return Config{}, fmt.Errorf("missing DENUE token: set INEGI_DENUE_TOKEN (or INEGI_TOKEN)")
	}
	return cfg, nil
}

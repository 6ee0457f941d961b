package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datamx/inegi-mcp-server/internal/config"
	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

func indicatorsClientFor(t *testing.T, handler http.Handler) *inegi.IndicatorsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.Config{
		IndicadoresToken:   "tok",
		IndicadoresBaseURL: srv.URL,
		HTTPTimeout:        5 * time.Second,
	}
	return inegi.NewIndicatorsClient(cfg, &http.Client{Timeout: cfg.HTTPTimeout})
}

func denueClientFor(t *testing.T, handler http.Handler) *inegi.DENUEClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.Config{
		DENUEToken:   "tok",
		DENUEBaseURL: srv.URL,
		HTTPTimeout:  5 * time.Second,
	}
	return inegi.NewDENUEClient(cfg, &http.Client{Timeout: cfg.HTTPTimeout})
}

func resultText(t *testing.T, result protocol.CallResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content part, got %d", len(result.Content))
	}
	return result.Content[0].Text
}

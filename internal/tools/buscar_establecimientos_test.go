package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamx/inegi-mcp-server/internal/inegi"
)

func TestBuscarEstablecimientosEnumeratesAtMostTen(t *testing.T) {
	records := make([]inegi.Establishment, 0, 25)
	for i := 1; i <= 25; i++ {
		records = append(records, inegi.Establishment{
			Name:          fmt.Sprintf("Cafetería %02d", i),
			ActivityClass: "Cafeterías",
			Colonia:       "Centro",
		})
	}
	client := denueClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(records)
	}))
	tool := BuscarEstablecimientos(client)

	result, rerr := tool.Invoke(context.Background(), json.RawMessage(`{"termino":"cafeteria"}`))
	require.Nil(t, rerr)
	text := resultText(t, result)

	// The total reflects the full result set even though only ten are listed.
	assert.Contains(t, text, "**Total:** 25 establecimientos")
	assert.Contains(t, text, "### 1. Cafetería 01")
	assert.Contains(t, text, "### 10. Cafetería 10")
	assert.NotContains(t, text, "### 11.")
	assert.Contains(t, text, "_(Mostrando 10 de 25 resultados)_")
}

func TestBuscarEstablecimientosMissingFieldsRenderNA(t *testing.T) {
	client := denueClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]inegi.Establishment{{LegalName: "Abarrotes SA"}})
	}))
	tool := BuscarEstablecimientos(client)

	result, rerr := tool.Invoke(context.Background(), json.RawMessage(`{"termino":"abarrotes"}`))
	require.Nil(t, rerr)
	text := resultText(t, result)

	assert.Contains(t, text, "### 1. Abarrotes SA")
	assert.Contains(t, text, "**Actividad:** N/A")
	assert.Contains(t, text, "**CP:** N/A")
	// Optional fields are skipped entirely when absent.
	assert.NotContains(t, text, "Coordenadas")
	assert.NotContains(t, text, "Teléfono")
	assert.False(t, strings.Contains(text, "Mostrando"))
}

func TestBuscarEstablecimientosEmptyTerm(t *testing.T) {
	tool := BuscarEstablecimientos(nil)
	result, rerr := tool.Invoke(context.Background(), json.RawMessage(`{"termino":"  "}`))
	require.Nil(t, rerr)
	assert.Equal(t, "Error: Se requiere un término de búsqueda", resultText(t, result))
}

func TestBuscarEstablecimientosNoResults(t *testing.T) {
	client := denueClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	tool := BuscarEstablecimientos(client)

	result, rerr := tool.Invoke(context.Background(), json.RawMessage(`{"termino":"zzz"}`))
	require.Nil(t, rerr)
	assert.Equal(t, "No se encontraron establecimientos con el término 'zzz'", resultText(t, result))
}

package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuantificarSumsBreakdownRows(t *testing.T) {
	client := denueClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"AE":"46","AG":"31","Total":"3"},{"AE":"46","AG":"19","Total":"5"}]`))
	}))
	tool := Cuantificar(client)

	result, rerr := tool.Invoke(context.Background(), json.RawMessage(`{"actividad_economica":"46","area_geografica":"31,19"}`))
	require.Nil(t, rerr)
	text := resultText(t, result)

	assert.Contains(t, text, "**Total de establecimientos:** 8")
	assert.Contains(t, text, "### Desglose:")
	assert.Contains(t, text, "**Yucatán** (Act: 46): 3 establecimientos")
	assert.Contains(t, text, "**Nuevo León** (Act: 46): 5 establecimientos")
}

func TestCuantificarDefaultsRenderAsAll(t *testing.T) {
	client := denueClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"AE":"0","AG":"0","Total":"5273727"}]`))
	}))
	tool := Cuantificar(client)

	result, rerr := tool.Invoke(context.Background(), nil)
	require.Nil(t, rerr)
	text := resultText(t, result)

	assert.Contains(t, text, "**Actividad:** Todas")
	assert.Contains(t, text, "**Área:** Todo México")
	assert.Contains(t, text, "**Estrato:** Todos los tamaños")
	assert.Contains(t, text, "**Total de establecimientos:** 5,273,727")
	// A single row gets no breakdown section.
	assert.NotContains(t, text, "Desglose")
}

func TestCuantificarEmptyReply(t *testing.T) {
	client := denueClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	tool := Cuantificar(client)

	result, rerr := tool.Invoke(context.Background(), json.RawMessage(`{"estrato":"9"}`))
	require.Nil(t, rerr)
	assert.Equal(t, "No se encontraron establecimientos con los criterios especificados.", resultText(t, result))
}

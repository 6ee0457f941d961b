package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/catalog"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// buscarIndicadoresTool searches the common-indicator catalog by keyword.
type buscarIndicadoresTool struct{}

// BuscarIndicadores constructs the indicator-search tool.
func BuscarIndicadores() *buscarIndicadoresTool {
	return &buscarIndicadoresTool{}
}

func (t *buscarIndicadoresTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "buscar_indicadores",
		Description: "Busca indicadores del INEGI por palabra clave. Útil para encontrar el ID de indicadores disponibles.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"query": {
					Type:        "string",
					Description: "Término de búsqueda (ej: 'población', 'PIB', 'empleo')",
				},
			},
			Required: []string{"query"},
		},
	}
}

type buscarIndicadoresArgs struct {
	Query string `json:"query"`
}

func (t *buscarIndicadoresTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args buscarIndicadoresArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	query := strings.ToLower(strings.TrimSpace(args.Query))
	if query == "" {
		return textResult("Error: Se requiere un término de búsqueda"), nil
	}

	var matches []catalog.Indicator
	for _, ind := range catalog.CommonIndicators {
		if strings.Contains(strings.ToLower(ind.Name), query) {
			matches = append(matches, ind)
		}
	}

	var b strings.Builder
	if len(matches) > 0 {
		b.WriteString("## Indicadores encontrados:\n\n")
		for _, ind := range matches {
			fmt.Fprintf(&b, "- **%s** (ID: `%s`)\n", ind.Name, ind.ID)
		}
		b.WriteString("\nUsa el ID para obtener los datos con `obtener_serie_temporal`")
		return textResult(b.String()), nil
	}

	fmt.Fprintf(&b, "No se encontraron indicadores con el término '%s'.\n\n", args.Query)
	b.WriteString("**Indicadores disponibles:**\n")
	for _, ind := range catalog.CommonIndicators {
		fmt.Fprintf(&b, "- %s (ID: `%s`)\n", ind.Name, ind.ID)
	}
	return textResult(b.String()), nil
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/catalog"
	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// compararEstadosTool fetches one indicator across several states. A failed
// state renders as an error section without discarding the others.
type compararEstadosTool struct {
	client *inegi.IndicatorsClient
}

// CompararEstados constructs the state-comparison tool.
func CompararEstados(client *inegi.IndicatorsClient) *compararEstadosTool {
	return &compararEstadosTool{client: client}
}

func (t *compararEstadosTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "comparar_estados",
		Description: "Compara un indicador entre diferentes estados de México. Útil para análisis regional.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"indicador_id": {
					Type:        "string",
					Description: "ID del indicador a comparar",
				},
				"estados": {
					Type:        "array",
					Items:       &protocol.JSONSchema{Type: "string"},
					Description: "Lista de códigos de estados (ej: ['31', '19', '09'])",
				},
				"historica": {
					Type:        "boolean",
					Description: "true para serie completa, false para último dato",
					Default:     false,
				},
			},
			Required: []string{"indicador_id", "estados"},
		},
	}
}

type compararEstadosArgs struct {
	IndicadorID string   `json:"indicador_id"`
	Estados     []string `json:"estados"`
	Historica   bool     `json:"historica"`
	Idioma      string   `json:"idioma"`
}

func (t *compararEstadosTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args compararEstadosArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if args.IndicadorID == "" {
		return textResult("Error: Se requiere el ID del indicador"), nil
	}
	if len(args.Estados) == 0 {
		return textResult("Error: Se requiere al menos un código de estado"), nil
	}

	results := t.client.CompareStates(ctx, args.IndicadorID, args.Estados, args.Historica, args.Idioma)

	var b strings.Builder
	fmt.Fprintf(&b, "## Comparación: %s\n\n", catalog.IndicatorName(args.IndicadorID))

	for _, res := range results {
		fmt.Fprintf(&b, "### %s\n", catalog.EntityName(res.Code))
		switch {
		case res.Err != nil:
			fmt.Fprintf(&b, "Error: %v\n\n", res.Err)
		case len(res.Data.Series) > 0 && len(res.Data.Series[0].Observations) > 0:
			obs := res.Data.Series[0].Observations
			last := obs[len(obs)-1]
			fmt.Fprintf(&b, "**Último dato:** %s (%s)\n\n", orNA(last.Value), orNA(last.TimePeriod))
		default:
			b.WriteString("Sin datos disponibles\n\n")
		}
	}
	return textResult(strings.TrimRight(b.String(), "\n")), nil
}

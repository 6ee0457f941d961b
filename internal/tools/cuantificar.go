package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/catalog"
	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// maxBreakdownRows bounds the per-row breakdown of a quantification.
const maxBreakdownRows = 20

// cuantificarTool counts establishments by activity, area and size stratum
// without retrieving individual records.
type cuantificarTool struct {
	client *inegi.DENUEClient
}

// Cuantificar constructs the quantification tool.
func Cuantificar(client *inegi.DENUEClient) *cuantificarTool {
	return &cuantificarTool{client: client}
}

func (t *cuantificarTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "cuantificar_establecimientos",
		Description: "Cuantifica establecimientos por actividad económica, área geográfica y tamaño (estrato).",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"actividad_economica": {
					Type:        "string",
					Description: "Clave de actividad económica, 2-6 dígitos de sector a clase, separables por coma ('0'=todas)",
					Default:     "0",
				},
				"area_geografica": {
					Type:        "string",
					Description: "Clave de área: 2 dígitos estado, 5 municipio, 9 localidad, separables por coma ('0'=todo el país)",
					Default:     "0",
				},
				"estrato": {
					Type:        "string",
					Description: "Estrato de personal ocupado 1-7 ('0'=todos)",
					Default:     "0",
				},
			},
		},
	}
}

type cuantificarArgs struct {
	ActividadEconomica string `json:"actividad_economica"`
	AreaGeografica     string `json:"area_geografica"`
	Estrato            string `json:"estrato"`
}

func (t *cuantificarTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args cuantificarArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}

	results, err := t.client.Count(ctx, args.ActividadEconomica, args.AreaGeografica, args.Estrato)
	if err != nil {
		return errorResult("Error al cuantificar establecimientos", err), nil
	}
	if len(results) == 0 {
		return textResult("No se encontraron establecimientos con los criterios especificados."), nil
	}

	var b strings.Builder
	b.WriteString("## Cuantificación de Establecimientos\n\n")

	if args.ActividadEconomica != "" && args.ActividadEconomica != "0" {
		fmt.Fprintf(&b, "**Actividad:** %s (%s)\n", catalog.ActivityName(args.ActividadEconomica), args.ActividadEconomica)
	} else {
		b.WriteString("**Actividad:** Todas\n")
	}

	if args.AreaGeografica != "" && args.AreaGeografica != "0" {
		if len(args.AreaGeografica) == 2 {
			fmt.Fprintf(&b, "**Área:** %s\n", catalog.EntityName(args.AreaGeografica))
		} else {
			fmt.Fprintf(&b, "**Área:** %s\n", args.AreaGeografica)
		}
	} else {
		b.WriteString("**Área:** Todo México\n")
	}

	if args.Estrato != "" && args.Estrato != "0" {
		fmt.Fprintf(&b, "**Estrato:** %s\n", catalog.StratumLabel(args.Estrato))
	} else {
		b.WriteString("**Estrato:** Todos los tamaños\n")
	}

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "**Total de establecimientos:** %s\n\n", grouped(inegi.SumTotals(results)))

	if len(results) > 1 {
		b.WriteString("### Desglose:\n\n")
		shown := len(results)
		if shown > maxBreakdownRows {
			shown = maxBreakdownRows
		}
		for _, row := range results[:shown] {
			area := fmt.Sprintf("Área %s", row.Geo)
			if len(row.Geo) == 2 {
				area = catalog.EntityName(row.Geo)
			}
			total, _ := strconv.Atoi(row.Total)
			fmt.Fprintf(&b, "- **%s** (Act: %s): %s establecimientos\n", area, orNA(row.Activity), grouped(total))
		}
		if len(results) > shown {
			fmt.Fprintf(&b, "\n_(Mostrando %d de %d resultados)_\n", shown, len(results))
		}
	}
	return textResult(b.String()), nil
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/catalog"
	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// estadisticasTool aggregates a search result set into counts and a
// per-activity distribution instead of listing records.
type estadisticasTool struct {
	client *inegi.DENUEClient
}

// EstadisticasEstablecimientos constructs the statistics tool.
func EstadisticasEstablecimientos(client *inegi.DENUEClient) *estadisticasTool {
	return &estadisticasTool{client: client}
}

func (t *estadisticasTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "estadisticas_establecimientos",
		Description: "Genera estadísticas básicas de establecimientos: total y distribución por actividad.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"termino": {
					Type:        "string",
					Description: "Término de búsqueda o actividad",
				},
				"codigo_entidad": {
					Type:        "string",
					Description: "Código de entidad federativa (opcional)",
				},
				"latitud": {
					Type:        "number",
					Description: "Latitud para búsqueda por área (opcional)",
				},
				"longitud": {
					Type:        "number",
					Description: "Longitud para búsqueda por área (opcional)",
				},
				"radio": {
					Type:        "integer",
					Description: "Radio de búsqueda en metros",
					Default:     inegi.MunicipalRadius,
				},
			},
			Required: []string{"termino"},
		},
	}
}

type estadisticasArgs struct {
	Termino       string   `json:"termino"`
	CodigoEntidad string   `json:"codigo_entidad"`
	Latitud       *float64 `json:"latitud"`
	Longitud      *float64 `json:"longitud"`
	Radio         int      `json:"radio"`
}

func (t *estadisticasTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args estadisticasArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if strings.TrimSpace(args.Termino) == "" {
		return textResult("Error: Se requiere un término de búsqueda"), nil
	}

	stats, err := t.client.Stats(ctx, args.Termino, args.CodigoEntidad, args.Latitud, args.Longitud, args.Radio)
	if err != nil {
		return errorResult("Error al generar estadísticas", err), nil
	}
	if stats.Total == 0 {
		return textResult(fmt.Sprintf("No se encontraron establecimientos con el término '%s'", args.Termino)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Estadísticas: %s\n\n", args.Termino)
	if args.CodigoEntidad != "" {
		fmt.Fprintf(&b, "**Entidad:** %s\n", catalog.EntityName(args.CodigoEntidad))
	}
	fmt.Fprintf(&b, "**Total de establecimientos:** %s\n\n", grouped(stats.Total))

	b.WriteString("### Distribución por actividad\n\n")
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(stats.Activities))
	for name, count := range stats.Activities {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %d\n", e.name, e.count)
	}

	if len(stats.Sample) > 0 {
		b.WriteString("\n### Muestra\n\n")
		for i, est := range stats.Sample {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, est.DisplayName(), orNA(est.ActivityName))
		}
	}
	return textResult(b.String()), nil
}

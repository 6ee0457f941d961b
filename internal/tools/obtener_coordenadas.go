package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// coordenadasTool extracts establishment coordinates for maps or spatial
// analysis. The enumeration limit is caller-supplied.
type coordenadasTool struct {
	client *inegi.DENUEClient
}

// ObtenerCoordenadas constructs the coordinate-extraction tool.
func ObtenerCoordenadas(client *inegi.DENUEClient) *coordenadasTool {
	return &coordenadasTool{client: client}
}

func (t *coordenadasTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "obtener_coordenadas_establecimientos",
		Description: "Obtiene las coordenadas geográficas de establecimientos. Útil para mapas o análisis espacial.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"termino": {
					Type:        "string",
					Description: "Nombre o tipo de establecimiento a buscar",
				},
				"limite": {
					Type:        "integer",
					Description: "Número máximo de resultados",
					Default:     5,
				},
				"latitud": {
					Type:        "number",
					Description: "Latitud del centro de búsqueda (opcional)",
				},
				"longitud": {
					Type:        "number",
					Description: "Longitud del centro de búsqueda (opcional)",
				},
				"radio": {
					Type:        "integer",
					Description: "Radio de búsqueda en metros",
					Default:     inegi.DefaultRadius,
				},
			},
			Required: []string{"termino"},
		},
	}
}

type coordenadasArgs struct {
	Termino  string   `json:"termino"`
	Limite   int      `json:"limite"`
	Latitud  *float64 `json:"latitud"`
	Longitud *float64 `json:"longitud"`
	Radio    int      `json:"radio"`
}

func (t *coordenadasTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args coordenadasArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if strings.TrimSpace(args.Termino) == "" {
		return textResult("Error: Se requiere un término de búsqueda"), nil
	}
	if args.Limite <= 0 {
		args.Limite = 5
	}

	results, err := t.client.Search(ctx, args.Termino, args.Latitud, args.Longitud, args.Radio)
	if err != nil {
		return errorResult("Error al obtener coordenadas", err), nil
	}
	if len(results) == 0 {
		return textResult(fmt.Sprintf("No se encontraron establecimientos con el término '%s'", args.Termino)), nil
	}

	shown := len(results)
	if shown > args.Limite {
		shown = args.Limite
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Coordenadas de establecimientos: %s\n\n", args.Termino)
	if args.Latitud != nil && args.Longitud != nil {
		radio := args.Radio
		if radio <= 0 {
			radio = inegi.DefaultRadius
		}
		fmt.Fprintf(&b, "**Búsqueda centrada en:** %v, %v (radio: %dm)\n\n", *args.Latitud, *args.Longitud, radio)
	}
	fmt.Fprintf(&b, "**Total encontrados:** %d\n", len(results))
	fmt.Fprintf(&b, "**Mostrando:** %d\n\n", shown)

	for i, est := range results[:shown] {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, est.DisplayName())
		address := strings.TrimSpace(est.Street + " " + est.ExteriorNum)
		if est.Colonia != "" {
			if address != "" {
				address += ", "
			}
			address += est.Colonia
		}
		if address != "" {
			fmt.Fprintf(&b, "   **Dirección:** %s\n", address)
		}
		fmt.Fprintf(&b, "   **Latitud:** %s\n", orNA(est.Latitude))
		fmt.Fprintf(&b, "   **Longitud:** %s\n", orNA(est.Longitude))
		if est.Latitude != "" && est.Longitude != "" {
			fmt.Fprintf(&b, "   **Coordenadas:** `%s,%s`\n", est.Latitude, est.Longitude)
		}
		b.WriteString("\n")
	}

	if len(results) > shown {
		fmt.Fprintf(&b, "\n_(Hay %d establecimientos más. Ajusta el parámetro 'limite' para ver más)_", len(results)-shown)
	}
	return textResult(b.String()), nil
}

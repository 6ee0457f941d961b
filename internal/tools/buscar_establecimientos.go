package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// maxEstablishments bounds how many records a search render enumerates.
const maxEstablishments = 10

// buscarEstablecimientosTool searches the DENUE by free text, optionally
// centered on a point.
type buscarEstablecimientosTool struct {
	client *inegi.DENUEClient
}

// BuscarEstablecimientos constructs the establishment-search tool.
func BuscarEstablecimientos(client *inegi.DENUEClient) *buscarEstablecimientosTool {
	return &buscarEstablecimientosTool{client: client}
}

func (t *buscarEstablecimientosTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "buscar_establecimientos",
		Description: "Busca establecimientos en el DENUE por término y opcionalmente por ubicación.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"termino": {
					Type:        "string",
					Description: "Palabra(s) a buscar (nombre, actividad, ubicación)",
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

type buscarEstablecimientosArgs struct {
	Termino  string   `json:"termino"`
	Latitud  *float64 `json:"latitud"`
	Longitud *float64 `json:"longitud"`
	Radio    int      `json:"radio"`
}

func (t *buscarEstablecimientosTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args buscarEstablecimientosArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if strings.TrimSpace(args.Termino) == "" {
		return textResult("Error: Se requiere un término de búsqueda"), nil
	}

	results, err := t.client.Search(ctx, args.Termino, args.Latitud, args.Longitud, args.Radio)
	if err != nil {
		return errorResult("Error al buscar establecimientos", err), nil
	}
	if len(results) == 0 {
		return textResult(fmt.Sprintf("No se encontraron establecimientos con el término '%s'", args.Termino)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Establecimientos encontrados: %s\n\n", args.Termino)
	fmt.Fprintf(&b, "**Total:** %d establecimientos\n\n", len(results))

	shown := len(results)
	if shown > maxEstablishments {
		shown = maxEstablishments
	}
	for i, est := range results[:shown] {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, est.DisplayName())
		fmt.Fprintf(&b, "**Actividad:** %s\n", orNA(est.ActivityClass))
		fmt.Fprintf(&b, "**Dirección:** %s\n", orNA(strings.TrimSpace(est.Street+" "+est.ExteriorNum)))
		fmt.Fprintf(&b, "**Colonia:** %s\n", orNA(est.Colonia))
		fmt.Fprintf(&b, "**Ubicación:** %s\n", orNA(est.Location))
		fmt.Fprintf(&b, "**CP:** %s\n", orNA(est.PostalCode))
		if est.Latitude != "" && est.Longitude != "" {
			fmt.Fprintf(&b, "**Coordenadas:** %s, %s\n", est.Latitude, est.Longitude)
		}
		if est.Phone != "" {
			fmt.Fprintf(&b, "**Teléfono:** %s\n", est.Phone)
		}
		b.WriteString("\n")
	}

	if len(results) > shown {
		fmt.Fprintf(&b, "\n_(Mostrando %d de %d resultados)_", shown, len(results))
	}
	return textResult(b.String()), nil
}

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

// areaActTool runs the filtered BuscarAreaAct search with its extended
// record shape (AGEB, manzana, economic classification).
type areaActTool struct {
	client *inegi.DENUEClient
}

// BuscarAreaAct constructs the detailed-search tool.
func BuscarAreaAct(client *inegi.DENUEClient) *areaActTool {
	return &areaActTool{client: client}
}

func (t *areaActTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "buscar_area_act",
		Description: "Búsqueda avanzada de establecimientos con información detallada incluyendo AGEB y Manzana.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"entidad": {
					Type:        "string",
					Description: "Código de entidad federativa (ej: '31' para Yucatán, '0' para todas)",
					Default:     "31",
				},
				"municipio": {
					Type:        "string",
					Description: "Código de municipio (ej: '050' para Mérida, '0' para todos)",
					Default:     "0",
				},
				"nombre": {
					Type:        "string",
					Description: "Nombre del establecimiento ('0' para todos)",
					Default:     "0",
				},
				"clase": {
					Type:        "string",
					Description: "Código de clase de actividad económica ('0' para todas)",
					Default:     "0",
				},
				"registro_inicial": {
					Type:        "integer",
					Description: "Número de registro inicial",
					Default:     1,
				},
				"registro_final": {
					Type:        "integer",
					Description: "Número de registro final (máx documentado: 1000)",
					Default:     10,
				},
			},
		},
	}
}

type areaActArgs struct {
	Entidad         string `json:"entidad"`
	Municipio       string `json:"municipio"`
	Nombre          string `json:"nombre"`
	Clase           string `json:"clase"`
	RegistroInicial int    `json:"registro_inicial"`
	RegistroFinal   int    `json:"registro_final"`
}

func (t *areaActTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	args := areaActArgs{Entidad: "31"}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
		if args.Entidad == "" {
			args.Entidad = "31"
		}
	}

	results, err := t.client.SearchAreaAct(ctx, inegi.AreaActQuery{
		Entity:       args.Entidad,
		Municipality: args.Municipio,
		Name:         args.Nombre,
		Class:        args.Clase,
		RecordStart:  args.RegistroInicial,
		RecordEnd:    args.RegistroFinal,
	})
	if err != nil {
		return errorResult("Error al buscar establecimientos", err), nil
	}
	if len(results) == 0 {
		return textResult("No se encontraron establecimientos con los criterios especificados."), nil
	}

	var b strings.Builder
	b.WriteString("## Búsqueda Detallada de Establecimientos\n\n")
	if args.Entidad != "0" {
		fmt.Fprintf(&b, "**Entidad:** %s\n", catalog.EntityName(args.Entidad))
	}
	if args.Municipio != "" && args.Municipio != "0" {
		fmt.Fprintf(&b, "**Municipio:** %s\n", args.Municipio)
	}
	if args.Nombre != "" && args.Nombre != "0" {
		fmt.Fprintf(&b, "**Nombre:** %s\n", args.Nombre)
	}
	if args.Clase != "" && args.Clase != "0" {
		fmt.Fprintf(&b, "**Clase económica:** %s\n", args.Clase)
	}
	fmt.Fprintf(&b, "**Total encontrados:** %d\n\n---\n\n", len(results))

	limit := args.RegistroFinal
	if limit <= 0 {
		limit = 10
	}
	shown := len(results)
	if shown > limit {
		shown = limit
	}
	for i, est := range results[:shown] {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, est.DisplayName())
		fmt.Fprintf(&b, "**Actividad:** %s\n", orNA(est.ActivityClass))
		fmt.Fprintf(&b, "**Dirección:** %s\n", orNA(strings.TrimSpace(strings.Join([]string{est.Street, est.ExteriorNum, est.InteriorNum}, " "))))
		fmt.Fprintf(&b, "**Colonia:** %s\n", orNA(est.Colonia))
		fmt.Fprintf(&b, "**CP:** %s\n", orNA(est.PostalCode))

		if est.AGEB != "" || est.Block != "" {
			b.WriteString("\n**Información Geográfica:**\n")
			if est.AGEB != "" {
				fmt.Fprintf(&b, "  - AGEB: %s\n", est.AGEB)
			}
			if est.Block != "" {
				fmt.Fprintf(&b, "  - Manzana: %s\n", est.Block)
			}
		}
		if est.Latitude != "" && est.Longitude != "" {
			fmt.Fprintf(&b, "**Coordenadas:** %s, %s\n", est.Latitude, est.Longitude)
		}
		if est.SectorID != "" || est.SubsectorID != "" || est.BranchID != "" {
			b.WriteString("\n**Clasificación Económica:**\n")
			if est.SectorID != "" {
				fmt.Fprintf(&b, "  - Sector: %s\n", est.SectorID)
			}
			if est.SubsectorID != "" {
				fmt.Fprintf(&b, "  - Subsector: %s\n", est.SubsectorID)
			}
			if est.BranchID != "" {
				fmt.Fprintf(&b, "  - Rama: %s\n", est.BranchID)
			}
		}
		if est.Phone != "" {
			fmt.Fprintf(&b, "**Teléfono:** %s\n", est.Phone)
		}
		if est.Email != "" {
			fmt.Fprintf(&b, "**Email:** %s\n", est.Email)
		}
		if est.Website != "" {
			fmt.Fprintf(&b, "**Sitio web:** %s\n", est.Website)
		}
		b.WriteString("\n")
	}

	if len(results) > shown {
		fmt.Fprintf(&b, "\n_(Mostrando %d de %d resultados. Ajusta 'registro_final' para ver más)_", shown, len(results))
	}
	return textResult(b.String()), nil
}

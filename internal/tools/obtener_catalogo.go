package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// catalogoTool fetches a metadata catalog (units, frequencies, topics...).
type catalogoTool struct {
	client *inegi.IndicatorsClient
}

// ObtenerCatalogo constructs the metadata-catalog tool.
func ObtenerCatalogo(client *inegi.IndicatorsClient) *catalogoTool {
	return &catalogoTool{client: client}
}

func (t *catalogoTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "obtener_catalogo",
		Description: "Obtiene un catálogo de metadatos del banco de indicadores (ej: UNIT, FREQ, TOPIC).",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"tipo_catalogo": {
					Type:        "string",
					Description: "Tipo de catálogo (ej: 'UNIT', 'FREQ')",
				},
				"id_catalogo": {
					Type:        "string",
					Description: "ID específico dentro del catálogo, vacío para todos",
				},
				"idioma": {
					Type:        "string",
					Enum:        []string{"es", "en"},
					Description: "Idioma: 'es' o 'en'",
					Default:     "es",
				},
			},
			Required: []string{"tipo_catalogo"},
		},
	}
}

type catalogoArgs struct {
	TipoCatalogo string `json:"tipo_catalogo"`
	IDCatalogo   string `json:"id_catalogo"`
	Idioma       string `json:"idioma"`
}

func (t *catalogoTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args catalogoArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if strings.TrimSpace(args.TipoCatalogo) == "" {
		return textResult("Error: Se requiere el tipo de catálogo"), nil
	}

	data, err := t.client.FetchCatalog(ctx, args.TipoCatalogo, args.IDCatalogo, args.Idioma)
	if err != nil {
		return errorResult("Error al obtener el catálogo", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Catálogo CL_%s\n\n", args.TipoCatalogo)
	pretty, perr := json.MarshalIndent(json.RawMessage(data), "", "  ")
	if perr != nil {
		pretty = data
	}
	b.Write(pretty)
	return textResult(b.String()), nil
}

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

// metadatosTool renders the metadata sheet of one indicator.
type metadatosTool struct {
	client *inegi.IndicatorsClient
}

// ObtenerMetadatos constructs the metadata tool.
func ObtenerMetadatos(client *inegi.IndicatorsClient) *metadatosTool {
	return &metadatosTool{client: client}
}

func (t *metadatosTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "obtener_metadatos",
		Description: "Obtiene metadatos detallados de un indicador (frecuencia, unidad, fuente, etc.).",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"indicador_id": {
					Type:        "string",
					Description: "ID del indicador",
				},
				"idioma": {
					Type:        "string",
					Enum:        []string{"es", "en"},
					Description: "Idioma: 'es' o 'en'",
					Default:     "es",
				},
			},
			Required: []string{"indicador_id"},
		},
	}
}

type metadatosArgs struct {
	IndicadorID string `json:"indicador_id"`
	Idioma      string `json:"idioma"`
}

func (t *metadatosTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args metadatosArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if args.IndicadorID == "" {
		return textResult("Error: Se requiere el ID del indicador"), nil
	}

	meta, err := t.client.FetchMetadata(ctx, args.IndicadorID, args.Idioma)
	if err != nil {
		return errorResult("Error al obtener metadatos", err), nil
	}
	if len(meta) == 0 {
		return textResult(fmt.Sprintf("No se encontraron metadatos para el indicador %s", args.IndicadorID)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Metadatos: %s\n\n", catalog.IndicatorName(args.IndicadorID))
	fmt.Fprintf(&b, "**ID:** %s\n", args.IndicadorID)
	fmt.Fprintf(&b, "**Frecuencia:** %s\n", orNA(meta["FREQ"]))
	fmt.Fprintf(&b, "**Tema:** %s\n", orNA(meta["TOPIC"]))
	fmt.Fprintf(&b, "**Unidad:** %s\n", orNA(meta["UNIT"]))
	fmt.Fprintf(&b, "**Multiplicador:** %s\n", orNA(meta["UNIT_MULT"]))
	fmt.Fprintf(&b, "**Fuente:** %s\n", orNA(meta["SOURCE"]))
	fmt.Fprintf(&b, "**Última actualización:** %s\n", orNA(meta["LASTUPDATE"]))
	fmt.Fprintf(&b, "**Estado:** %s\n", orNA(meta["STATUS"]))
	if note := strings.TrimSpace(meta["NOTE"]); note != "" {
		fmt.Fprintf(&b, "\n**Notas:** %s\n", note)
	}
	return textResult(b.String()), nil
}

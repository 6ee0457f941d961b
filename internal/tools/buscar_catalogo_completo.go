package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// catalogoCompletoTool searches the full DENUE catalog through the
// map-page session endpoint. Fragile by nature: the upstream is
// undocumented and may change without notice.
type catalogoCompletoTool struct {
	client *inegi.DENUEClient
}

// BuscarCatalogoCompleto constructs the full-catalog search tool.
func BuscarCatalogoCompleto(client *inegi.DENUEClient) *catalogoCompletoTool {
	return &catalogoCompletoTool{client: client}
}

func (t *catalogoCompletoTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "buscar_catalogo_completo",
		Description: "Busca en el catálogo completo del DENUE mediante el buscador del mapa interactivo.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"termino": {
					Type:        "string",
					Description: "Término de búsqueda",
				},
				"pagina": {
					Type:        "integer",
					Description: "Página de resultados",
					Default:     1,
				},
				"por_pagina": {
					Type:        "integer",
					Description: "Resultados por página",
					Default:     10,
				},
				"area_geografica": {
					Type:        "string",
					Description: "Clave de área geográfica ('00'=nacional)",
					Default:     "00",
				},
			},
			Required: []string{"termino"},
		},
	}
}

type catalogoCompletoArgs struct {
	Termino        string `json:"termino"`
	Pagina         int    `json:"pagina"`
	PorPagina      int    `json:"por_pagina"`
	AreaGeografica string `json:"area_geografica"`
}

func (t *catalogoCompletoTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args catalogoCompletoArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if strings.TrimSpace(args.Termino) == "" {
		return textResult("Error: Se requiere un término de búsqueda"), nil
	}

	data, err := t.client.FullCatalogSearch(ctx, args.Termino, args.Pagina, args.PorPagina, args.AreaGeografica)
	if err != nil {
		return errorResult("Error al buscar en el catálogo completo", err), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Catálogo completo: %s\n\n", args.Termino)

	// The upstream shape is undocumented; when it is a list, render a count,
	// otherwise fall back to the pretty-printed body.
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		fmt.Fprintf(&b, "**Total en esta página:** %d\n\n", len(items))
	}
	pretty, err := json.MarshalIndent(json.RawMessage(data), "", "  ")
	if err != nil {
		pretty = data
	}
	b.Write(pretty)
	return textResult(b.String()), nil
}

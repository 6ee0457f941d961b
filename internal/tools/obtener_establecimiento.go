package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// fichaTool renders the full record sheet of one establishment.
type fichaTool struct {
	client *inegi.DENUEClient
}

// ObtenerEstablecimiento constructs the detail-lookup tool.
func ObtenerEstablecimiento(client *inegi.DENUEClient) *fichaTool {
	return &fichaTool{client: client}
}

func (t *fichaTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "obtener_establecimiento",
		Description: "Obtiene la ficha completa de un establecimiento específico del DENUE.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id_establecimiento": {
					Type:        "string",
					Description: "ID del establecimiento",
				},
			},
			Required: []string{"id_establecimiento"},
		},
	}
}

type fichaArgs struct {
	IDEstablecimiento string `json:"id_establecimiento"`
}

func (t *fichaTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args fichaArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if args.IDEstablecimiento == "" {
		return textResult("Error: Se requiere el ID del establecimiento"), nil
	}

	est, err := t.client.Detail(ctx, args.IDEstablecimiento)
	if err != nil {
		return errorResult("Error al obtener la ficha", err), nil
	}
	if est == nil || (est.ID == "" && est.Name == "" && est.LegalName == "") {
		return textResult("No se encontró el establecimiento"), nil
	}

	var b strings.Builder
	b.WriteString("## Ficha del Establecimiento\n\n")
	fmt.Fprintf(&b, "**Nombre:** %s\n", orNA(est.DisplayName()))
	fmt.Fprintf(&b, "**ID:** %s\n\n", orNA(est.ID))
	b.WriteString("### Actividad\n")
	fmt.Fprintf(&b, "**Clase:** %s\n\n", orNA(est.ActivityName))
	b.WriteString("### Ubicación\n")
	fmt.Fprintf(&b, "**Calle:** %s\n", orNA(strings.TrimSpace(est.Street+" "+est.ExteriorNum)))
	fmt.Fprintf(&b, "**Colonia:** %s\n", orNA(est.Colonia))
	fmt.Fprintf(&b, "**Municipio:** %s\n", orNA(est.Municipality))
	fmt.Fprintf(&b, "**Estado:** %s\n", orNA(est.Entity))
	if est.Latitude != "" && est.Longitude != "" {
		fmt.Fprintf(&b, "**Coordenadas:** %s, %s\n", est.Latitude, est.Longitude)
	}
	b.WriteString("\n")
	if est.Phone != "" {
		fmt.Fprintf(&b, "**Teléfono:** %s\n", est.Phone)
	}
	if est.Email != "" {
		fmt.Fprintf(&b, "**Email:** %s\n", est.Email)
	}
	if est.Website != "" {
		fmt.Fprintf(&b, "**Sitio web:** %s\n", est.Website)
	}
	return textResult(strings.TrimRight(b.String(), "\n")), nil
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/datamx/inegi-mcp-server/internal/catalog"
	"github.com/datamx/inegi-mcp-server/internal/protocol"
)

// listarIndicadoresTool lists the common-indicator catalog grouped by topic.
type listarIndicadoresTool struct{}

// ListarIndicadores constructs the catalog-listing tool.
func ListarIndicadores() *listarIndicadoresTool {
	return &listarIndicadoresTool{}
}

func (t *listarIndicadoresTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "listar_indicadores_disponibles",
		Description: "Lista todos los indicadores disponibles en el catálogo básico.",
		InputSchema: &protocol.JSONSchema{Type: "object"},
	}
}

func (t *listarIndicadoresTool) Invoke(_ context.Context, _ json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var b strings.Builder
	b.WriteString("## Indicadores Disponibles\n\n")
	b.WriteString("Estos son algunos indicadores comunes. Usa su ID para consultar datos.\n\n")

	for _, ind := range catalog.CommonIndicators {
		fmt.Fprintf(&b, "- **%s**\n  - ID: `%s`\n\n", ind.Name, ind.ID)
	}

	b.WriteString("### Categorías\n\n")
	names := make([]string, 0, len(catalog.Categories))
	for name := range catalog.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- **%s:** %s\n", name, strings.Join(catalog.Categories[name], ", "))
	}

	b.WriteString("\n**Tip:** Usa `obtener_serie_temporal` con el ID para obtener los datos.")
	return textResult(b.String()), nil
}

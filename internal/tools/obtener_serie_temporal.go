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

// maxObservations bounds how many trailing observations a series render shows.
const maxObservations = 10

// serieTemporalTool fetches an indicator series at national, state or
// municipal level.
type serieTemporalTool struct {
	client *inegi.IndicatorsClient
}

// ObtenerSerieTemporal constructs the time-series tool.
func ObtenerSerieTemporal(client *inegi.IndicatorsClient) *serieTemporalTool {
	return &serieTemporalTool{client: client}
}

func (t *serieTemporalTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "obtener_serie_temporal",
		Description: "Obtiene datos de un indicador económico o demográfico del INEGI a nivel nacional, estatal o municipal.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"indicador_id": {
					Type:        "string",
					Description: "ID del indicador (ej: '1002000001' para población)",
				},
				"area_geografica": {
					Type:        "string",
					Enum:        []string{"00", "99", "999"},
					Description: "Área: '00'=nacional, '99'=estatal, '999'=municipal",
					Default:     "00",
				},
				"codigo_geo": {
					Type:        "string",
					Description: "Código de estado/municipio (ej: '31' para Yucatán)",
				},
				"historica": {
					Type:        "boolean",
					Description: "true para serie completa, false para último dato",
					Default:     true,
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

type serieTemporalArgs struct {
	IndicadorID    string `json:"indicador_id"`
	AreaGeografica string `json:"area_geografica"`
	CodigoGeo      string `json:"codigo_geo"`
	Historica      *bool  `json:"historica"`
	Idioma         string `json:"idioma"`
}

func (t *serieTemporalTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args serieTemporalArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return protocol.CallResult{}, invalidArgs()
	}
	if args.IndicadorID == "" {
		return textResult("Error: Se requiere el ID del indicador"), nil
	}

	historica := true
	if args.Historica != nil {
		historica = *args.Historica
	}

	data, err := t.client.FetchIndicator(ctx, inegi.IndicatorQuery{
		IndicatorID: args.IndicadorID,
		AreaGeo:     args.AreaGeografica,
		GeoCode:     args.CodigoGeo,
		Historical:  historica,
		Language:    args.Idioma,
	})
	if err != nil {
		return errorResult("Error al obtener el indicador", err), nil
	}
	if len(data.Series) == 0 {
		return textResult(fmt.Sprintf("No se encontraron datos para el indicador %s", args.IndicadorID)), nil
	}

	return textResult(renderSeries(args.IndicadorID, data.Series[0])), nil
}

// renderSeries writes the metadata header and the trailing observations,
// oldest-first within the shown window, with a truncation note when the
// series is longer than the window.
func renderSeries(indicatorID string, s inegi.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", catalog.IndicatorName(indicatorID))
	fmt.Fprintf(&b, "**Unidad:** %s\n", orNA(s.Unit))
	fmt.Fprintf(&b, "**Frecuencia:** %s\n", orNA(s.Freq))
	fmt.Fprintf(&b, "**Última actualización:** %s\n\n", orNA(s.LastUpdate))

	if len(s.Observations) == 0 {
		return b.String()
	}

	obs := s.Observations
	fmt.Fprintf(&b, "**Datos (%d observaciones):**\n\n", len(obs))
	shown := obs
	if len(obs) > maxObservations {
		shown = obs[len(obs)-maxObservations:]
	}
	for _, o := range shown {
		fmt.Fprintf(&b, "- %s: %s\n", orNA(o.TimePeriod), orNA(o.Value))
	}
	if len(obs) > maxObservations {
		fmt.Fprintf(&b, "\n_(Mostrando las últimas %d de %d observaciones)_", maxObservations, len(obs))
	}
	return b.String()
}

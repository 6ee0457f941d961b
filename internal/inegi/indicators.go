// Package inegi implements thin clients for two INEGI REST APIs: the
// indicators (BISE) API and the DENUE business directory. Both use
// positional path-segment URL conventions; responses come back as parsed
// JSON and are reshaped by the tool layer, not here.
package inegi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/datamx/inegi-mcp-server/internal/catalog"
	"github.com/datamx/inegi-mcp-server/internal/config"
)

// IndicatorsClient queries the INEGI indicators API.
type IndicatorsClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewIndicatorsClient builds a client from immutable configuration.
func NewIndicatorsClient(cfg config.Config, client *http.Client) *IndicatorsClient {
	return &IndicatorsClient{
		baseURL: cfg.IndicadoresBaseURL,
		token:   cfg.IndicadoresToken,
		client:  client,
	}
}

// IndicatorQuery describes one indicator fetch.
type IndicatorQuery struct {
	IndicatorID string
	AreaGeo     string // "00" national, "99" by state, "999" by municipality
	GeoCode     string // optional state/municipality code
	Historical  bool   // full series vs. latest observation only
	Language    string // "es" or "en"
}

// NormalizeArea applies the geographic key rule: a state code is padded to
// 2 digits and suffixed with "000"; a municipality code is padded to 5
// digits. Without a geo code the area passes through unchanged.
func NormalizeArea(areaGeo, geoCode string) string {
	if geoCode == "" {
		return areaGeo
	}
	switch areaGeo {
	case "99":
		return catalog.ZeroPad(geoCode, 2) + "000"
	case "999":
		return catalog.ZeroPad(geoCode, 5)
	}
	return areaGeo
}

// BuildIndicatorURL assembles the positional-segment URL for one query.
// Segment order is part of the upstream contract: method, indicator, language,
// area, last-data flag, source, version, token.
func (c *IndicatorsClient) BuildIndicatorURL(method, indicatorID, language, areaGeo string, lastOnly bool) string {
	last := "false"
	if lastOnly {
		last = "true"
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/BISE/%s/%s?type=json",
		c.baseURL, method, indicatorID, language, areaGeo, last, config.APIVersion, c.token)
}

// FetchIndicator retrieves one indicator series.
func (c *IndicatorsClient) FetchIndicator(ctx context.Context, q IndicatorQuery) (*SeriesResponse, error) {
	if q.IndicatorID == "" {
		return nil, fmt.Errorf("indicator id is required")
	}
	if q.AreaGeo == "" {
		q.AreaGeo = "00"
	}
	if q.Language == "" {
		q.Language = "es"
	}

	area := NormalizeArea(q.AreaGeo, q.GeoCode)
	u := c.BuildIndicatorURL("INDICATOR", q.IndicatorID, q.Language, area, !q.Historical)

	var data SeriesResponse
	if err := getJSON(ctx, c.client, u, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FetchCatalog retrieves a metadata catalog (CL_UNIT, CL_FREQ, ...). An empty
// catalogID becomes the literal segment "null", which the API reads as "all".
func (c *IndicatorsClient) FetchCatalog(ctx context.Context, catalogType, catalogID, language string) (json.RawMessage, error) {
	if catalogID == "" {
		catalogID = "null"
	}
	if language == "" {
		language = "es"
	}
	u := fmt.Sprintf("%s/CL_%s/%s/%s/BISE/%s/%s?type=json",
		c.baseURL, url.PathEscape(catalogType), url.PathEscape(catalogID), language, config.APIVersion, c.token)

	var data json.RawMessage
	if err := getJSON(ctx, c.client, u, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// FetchMetadata projects the metadata fields out of an indicator's latest
// observation. An empty Series list yields an empty map, not an error.
func (c *IndicatorsClient) FetchMetadata(ctx context.Context, indicatorID, language string) (map[string]string, error) {
	data, err := c.FetchIndicator(ctx, IndicatorQuery{
		IndicatorID: indicatorID,
		AreaGeo:     "00",
		Historical:  false,
		Language:    language,
	})
	if err != nil {
		return nil, err
	}
	if len(data.Series) == 0 {
		return map[string]string{}, nil
	}

	s := data.Series[0]
	return map[string]string{
		"INDICADOR_ID": s.Indicator,
		"FREQ":         s.Freq,
		"TOPIC":        s.Topic,
		"UNIT":         s.Unit,
		"UNIT_MULT":    s.UnitMult,
		"NOTE":         s.Note,
		"SOURCE":       s.Source,
		"LASTUPDATE":   s.LastUpdate,
		"STATUS":       s.Status,
	}, nil
}

// CompareStates fetches one indicator for each state code, sequentially and
// in input order. A failure for one code is recorded in its slot and does
// not abort the rest.
func (c *IndicatorsClient) CompareStates(ctx context.Context, indicatorID string, stateCodes []string, historical bool, language string) []StateResult {
	results := make([]StateResult, 0, len(stateCodes))
	for _, code := range stateCodes {
		data, err := c.FetchIndicator(ctx, IndicatorQuery{
			IndicatorID: indicatorID,
			AreaGeo:     "99",
			GeoCode:     code,
			Historical:  historical,
			Language:    language,
		})
		results = append(results, StateResult{Code: code, Data: data, Err: err})
	}
	return results
}

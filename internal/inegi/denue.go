package inegi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"

	"github.com/datamx/inegi-mcp-server/internal/config"
)

// Default search radii in meters.
const (
	DefaultRadius   = 250
	MunicipalRadius = 50000
)

// Reverse-engineered from the DENUE interactive map; not part of the
// documented API. The page GET exists only to obtain session cookies for
// the search POST. Field names and defaults in the payload are an opaque
// upstream contract — do not rename or "clean up"; the service rejects
// anything else and may break without notice.
const (
	catalogPageURL   = "https://www.inegi.org.mx/app/mapa/denue/default.aspx"
	catalogSearchURL = "https://www.inegi.org.mx/app/api/buscador/busquedaTodos"
)

// DENUEClient queries the DENUE business directory API.
type DENUEClient struct {
	baseURL string
	token   string
	client  *http.Client

	// Undocumented catalog-search endpoints; fields so tests can point them
	// at a local server.
	sessionPage string
	searchPost  string
}

// NewDENUEClient builds a client from immutable configuration.
func NewDENUEClient(cfg config.Config, client *http.Client) *DENUEClient {
	return &DENUEClient{
		baseURL:     cfg.DENUEBaseURL,
		token:       cfg.DENUEToken,
		client:      client,
		sessionPage: catalogPageURL,
		searchPost:  catalogSearchURL,
	}
}

// Search finds establishments by free text, optionally centered on a point.
// With coordinates the path is Buscar/{term}/{lat},{lon}/{radius}/{token};
// without, Buscar/{term}/{token}.
func (c *DENUEClient) Search(ctx context.Context, term string, lat, lon *float64, radius int) ([]Establishment, error) {
	if term == "" {
		return nil, fmt.Errorf("search term is required")
	}
	if radius <= 0 {
		radius = DefaultRadius
	}

	var u string
	if lat != nil && lon != nil {
		u = fmt.Sprintf("%s/Buscar/%s/%s,%s/%d/%s",
			c.baseURL, url.PathEscape(term), coord(*lat), coord(*lon), radius, c.token)
	} else {
		u = fmt.Sprintf("%s/Buscar/%s/%s", c.baseURL, url.PathEscape(term), c.token)
	}

	var out []Establishment
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchEntity finds establishments matching term within one federal entity.
func (c *DENUEClient) SearchEntity(ctx context.Context, term, entityCode string) ([]Establishment, error) {
	u := fmt.Sprintf("%s/BuscarEntidad/%s/%s/%s", c.baseURL, url.PathEscape(term), entityCode, c.token)
	var out []Establishment
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchArea lists every establishment within radius meters of a point.
func (c *DENUEClient) SearchArea(ctx context.Context, lat, lon float64, radius int) ([]Establishment, error) {
	if radius <= 0 {
		radius = DefaultRadius
	}
	u := fmt.Sprintf("%s/BuscarAreaGeo/%s,%s/%d/%s", c.baseURL, coord(lat), coord(lon), radius, c.token)
	var out []Establishment
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchName finds establishments by name fragment.
func (c *DENUEClient) SearchName(ctx context.Context, name string) ([]Establishment, error) {
	u := fmt.Sprintf("%s/Nombre/%s/%s", c.baseURL, url.PathEscape(name), c.token)
	var out []Establishment
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Detail fetches the full record sheet for one establishment ID.
func (c *DENUEClient) Detail(ctx context.Context, establishmentID string) (*Establishment, error) {
	if establishmentID == "" {
		return nil, fmt.Errorf("establishment id is required")
	}
	u := fmt.Sprintf("%s/Ficha/%s/%s", c.baseURL, url.PathEscape(establishmentID), c.token)
	var out Establishment
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AreaActQuery is the extended filter tuple for BuscarAreaAct. The sentinel
// "0" means unfiltered; Normalize fills it in for empty fields.
type AreaActQuery struct {
	Entity          string
	Municipality    string
	Locality        string
	AGEB            string
	Block           string
	Sector          string
	Subsector       string
	Branch          string
	Class           string
	Name            string
	RecordStart     int
	RecordEnd       int // documented max 1000, not enforced client-side
	EstablishmentID string
}

// Normalize applies the "0" sentinel and the default record range [1,10].
func (q AreaActQuery) Normalize() AreaActQuery {
	def := func(s string) string {
		if s == "" {
			return "0"
		}
		return s
	}
	q.Entity = def(q.Entity)
	q.Municipality = def(q.Municipality)
	q.Locality = def(q.Locality)
	q.AGEB = def(q.AGEB)
	q.Block = def(q.Block)
	q.Sector = def(q.Sector)
	q.Subsector = def(q.Subsector)
	q.Branch = def(q.Branch)
	q.Class = def(q.Class)
	q.Name = def(q.Name)
	q.EstablishmentID = def(q.EstablishmentID)
	if q.RecordStart <= 0 {
		q.RecordStart = 1
	}
	if q.RecordEnd <= 0 {
		q.RecordEnd = 10
	}
	return q
}

// SearchAreaAct runs the 13-segment filtered search. Returns the extended
// record shape including AGEB, block and economic classification.
func (c *DENUEClient) SearchAreaAct(ctx context.Context, q AreaActQuery) ([]Establishment, error) {
	q = q.Normalize()
	u := fmt.Sprintf("%s/BuscarAreaAct/%s/%s/%s/%s/%s/%s/%s/%s/%s/%s/%d/%d/%s/%s",
		c.baseURL,
		q.Entity, q.Municipality, q.Locality, q.AGEB, q.Block,
		q.Sector, q.Subsector, q.Branch, q.Class,
		url.PathEscape(q.Name),
		q.RecordStart, q.RecordEnd,
		q.EstablishmentID, c.token)

	var out []Establishment
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count runs Cuantificar: establishment counts by activity code, geographic
// key and size stratum. All three accept "0" for "all" and comma-joined
// multi-values.
func (c *DENUEClient) Count(ctx context.Context, activity, geo, stratum string) ([]CountItem, error) {
	if activity == "" {
		activity = "0"
	}
	if geo == "" {
		geo = "0"
	}
	if stratum == "" {
		stratum = "0"
	}
	u := fmt.Sprintf("%s/Cuantificar/%s/%s/%s/%s", c.baseURL, activity, geo, stratum, c.token)
	var out []CountItem
	if err := getJSON(ctx, c.client, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SumTotals adds up the Total field of count rows, cast to integer.
// Unparseable totals count as zero.
func SumTotals(items []CountItem) int {
	sum := 0
	for _, it := range items {
		n, err := strconv.Atoi(it.Total)
		if err != nil {
			continue
		}
		sum += n
	}
	return sum
}

// Stats runs the search mode matching the provided filters and aggregates
// the result: total, per-activity distribution and a sample of up to five
// records.
func (c *DENUEClient) Stats(ctx context.Context, term, entityCode string, lat, lon *float64, radius int) (*Stats, error) {
	var (
		results []Establishment
		err     error
	)
	switch {
	case lat != nil && lon != nil:
		if radius <= 0 {
			radius = MunicipalRadius
		}
		results, err = c.Search(ctx, term, lat, lon, radius)
	case entityCode != "":
		results, err = c.SearchEntity(ctx, term, entityCode)
	default:
		results, err = c.Search(ctx, term, nil, nil, 0)
	}
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Total:      len(results),
		Activities: make(map[string]int),
	}
	for _, est := range results {
		activity := est.ActivityName
		if activity == "" {
			activity = "No especificada"
		}
		stats.Activities[activity]++
	}
	sample := len(results)
	if sample > 5 {
		sample = 5
	}
	stats.Sample = results[:sample]
	return stats, nil
}

// FullCatalogSearch performs the two-step cookie-bootstrap search against
// the undocumented map-page endpoint: a GET whose body is discarded but
// whose cookies are kept, then a POST reusing the same jar. Both requests
// share one session; the jar is scoped to this call and released with it.
func (c *DENUEClient) FullCatalogSearch(ctx context.Context, term string, page, perPage int, geo string) (json.RawMessage, error) {
	if term == "" {
		return nil, fmt.Errorf("search term is required")
	}
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if geo == "" {
		geo = "00"
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	session := &http.Client{Timeout: c.client.Timeout, Jar: jar}

	// Step 1: prime the session. Body is irrelevant, only the cookies matter.
	pageReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sessionPage, nil)
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	pageResp, err := session.Do(pageReq)
	if err != nil {
		return nil, fmt.Errorf("session bootstrap: %w", err)
	}
	pageResp.Body.Close()
	if pageResp.StatusCode < 200 || pageResp.StatusCode >= 300 {
		return nil, fmt.Errorf("session bootstrap: unexpected status: %d", pageResp.StatusCode)
	}

	start := (page-1)*perPage + 1
	end := page * perPage

	// Opaque upstream contract; see the constant block above.
	payload := map[string]any{
		"busqueda": term,
		"inicio":   strconv.Itoa(start),
		"fin":      strconv.Itoa(end),
		"area":     geo,
		"tematica": "6",
		"orden":    "nombre",
		"metodo":   "busquedageo",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	searchReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchPost, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	searchReq.Header.Set("Content-Type", "application/json")
	searchReq.Header.Set("Accept", "application/json")

	searchResp, err := session.Do(searchReq)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer searchResp.Body.Close()
	if searchResp.StatusCode < 200 || searchResp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d", searchResp.StatusCode)
	}

	var data json.RawMessage
	if err := json.NewDecoder(searchResp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return data, nil
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

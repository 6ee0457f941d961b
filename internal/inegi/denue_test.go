package inegi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamx/inegi-mcp-server/internal/config"
)

func newDENUEClient(t *testing.T, handler http.Handler) *DENUEClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.Config{
		DENUEToken:   "tok",
		DENUEBaseURL: srv.URL,
		HTTPTimeout:  5 * time.Second,
	}
	return NewDENUEClient(cfg, &http.Client{Timeout: cfg.HTTPTimeout})
}

func establishments(names ...string) []Establishment {
	out := make([]Establishment, 0, len(names))
	for _, n := range names {
		out = append(out, Establishment{Name: n})
	}
	return out
}

func TestSearchTextOnly(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments("Cafetería Centro"))
	}))

	results, err := c.Search(context.Background(), "cafeteria", nil, nil, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "/Buscar/cafeteria/tok", gotPath)
}

func TestSearchWithPoint(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments())
	}))

	lat, lon := 20.97, -89.62
	_, err := c.Search(context.Background(), "cafeteria", &lat, &lon, 0)
	require.NoError(t, err)
	// Default radius applies when none is given.
	assert.Equal(t, "/Buscar/cafeteria/20.97,-89.62/250/tok", gotPath)
}

func TestSearchRequiresTerm(t *testing.T) {
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	_, err := c.Search(context.Background(), "", nil, nil, 0)
	require.Error(t, err)
}

func TestSearchEntity(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments())
	}))

	_, err := c.SearchEntity(context.Background(), "farmacia", "31")
	require.NoError(t, err)
	assert.Equal(t, "/BuscarEntidad/farmacia/31/tok", gotPath)
}

func TestSearchArea(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments())
	}))

	_, err := c.SearchArea(context.Background(), 19.43, -99.13, 500)
	require.NoError(t, err)
	assert.Equal(t, "/BuscarAreaGeo/19.43,-99.13/500/tok", gotPath)
}

func TestSearchName(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments())
	}))

	_, err := c.SearchName(context.Background(), "OXXO")
	require.NoError(t, err)
	assert.Equal(t, "/Nombre/OXXO/tok", gotPath)
}

func TestDetail(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Establishment{ID: "123", Name: "Panadería La Espiga"})
	}))

	est, err := c.Detail(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "/Ficha/123/tok", gotPath)
	assert.Equal(t, "Panadería La Espiga", est.Name)
}

func TestSearchAreaActDefaults(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments())
	}))

	// An empty query means every filter is the "0" sentinel and the record
	// range falls back to [1,10].
	_, err := c.SearchAreaAct(context.Background(), AreaActQuery{})
	require.NoError(t, err)
	assert.Equal(t, "/BuscarAreaAct/0/0/0/0/0/0/0/0/0/0/1/10/0/tok", gotPath)
}

func TestSearchAreaActFilters(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(establishments())
	}))

	_, err := c.SearchAreaAct(context.Background(), AreaActQuery{
		Entity:      "31",
		Class:       "462112",
		Name:        "OXXO",
		RecordStart: 1,
		RecordEnd:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, "/BuscarAreaAct/31/0/0/0/0/0/0/0/462112/OXXO/1/50/0/tok", gotPath)
}

func TestCount(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"AE":"46","AG":"31","Total":"3"},{"AE":"46","AG":"19","Total":"5"}]`))
	}))

	items, err := c.Count(context.Background(), "46", "31,19", "1")
	require.NoError(t, err)
	assert.Equal(t, "/Cuantificar/46/31,19/1/tok", gotPath)
	require.Len(t, items, 2)
	assert.Equal(t, 8, SumTotals(items))
}

func TestCountDefaultsToZeroSentinels(t *testing.T) {
	var gotPath string
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := c.Count(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "/Cuantificar/0/0/0/tok", gotPath)
}

func TestSumTotalsSkipsUnparseable(t *testing.T) {
	items := []CountItem{{Total: "3"}, {Total: "no-data"}, {Total: "5"}}
	assert.Equal(t, 8, SumTotals(items))
}

func TestStatsAggregatesByActivity(t *testing.T) {
	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Establishment{
			{Name: "A", ActivityName: "Restaurantes"},
			{Name: "B", ActivityName: "Restaurantes"},
			{Name: "C", ActivityName: "Cafeterías"},
			{Name: "D"},
		})
	}))

	stats, err := c.Stats(context.Background(), "comida", "31", nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Activities["Restaurantes"])
	assert.Equal(t, 1, stats.Activities["Cafeterías"])
	assert.Equal(t, 1, stats.Activities["No especificada"])
	assert.Len(t, stats.Sample, 4)
}

func TestFullCatalogSearchReusesSessionCookies(t *testing.T) {
	var (
		gotCookie  string
		gotPayload map[string]string
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/mapa", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "ASP.NET_SessionId", Value: "abc123"})
		_, _ = w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/buscar", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		if cookie, err := r.Cookie("ASP.NET_SessionId"); err == nil {
			gotCookie = cookie.Value
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`[{"nombre":"Cafetería Centro"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := newDENUEClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	c.sessionPage = srv.URL + "/mapa"
	c.searchPost = srv.URL + "/buscar"

	data, err := c.FullCatalogSearch(context.Background(), "cafeteria", 2, 10, "31")
	require.NoError(t, err)

	// Both requests share one cookie jar.
	assert.Equal(t, "abc123", gotCookie)

	// The payload field names and defaults are the upstream contract.
	assert.Equal(t, "cafeteria", gotPayload["busqueda"])
	assert.Equal(t, "11", gotPayload["inicio"])
	assert.Equal(t, "20", gotPayload["fin"])
	assert.Equal(t, "31", gotPayload["area"])
	assert.Equal(t, "6", gotPayload["tematica"])

	var items []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &items))
	assert.Len(t, items, 1)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Tienda", Establishment{Name: "Tienda"}.DisplayName())
	assert.Equal(t, "Razon SA", Establishment{LegalName: "Razon SA"}.DisplayName())
	assert.Equal(t, "Sin nombre", Establishment{}.DisplayName())
}

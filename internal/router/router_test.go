package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farm-records/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(router.Options{})
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(res.Body)
	require.NoErrorf(t, json.Unmarshal(raw, &env), "body=%s", raw)
	return res.StatusCode, env
}

func createID(t *testing.T, baseURL, path string, body any) string {
	t.Helper()
	st, env := doReq(t, baseURL, http.MethodPost, path, body)
	require.Equalf(t, http.StatusCreated, st, "create %s: %s", path, env.Message)
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func TestHTTP_EndToEnd_ClientFeedLivestock(t *testing.T) {
	ts := newServer(t)

	// 1) Cliente con nombres heredados
	clientID := createID(t, ts.URL, "/api/clients", map[string]any{
		"cedula":    "0912345678",
		"nombres":   "Ana",
		"apellidos": "Gomez",
		"telefono":  "0999",
	})
	{
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/clients/"+clientID, nil)
		require.Equal(t, http.StatusOK, st)
		var c map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &c))
		assert.Equal(t, "Ana Gomez", c["displayName"])
		assert.Equal(t, "0999", c["phone"])
	}

	// 2) Alimentación con tipoComida (v2)
	feedID := createID(t, ts.URL, "/api/feed", map[string]any{
		"tipoComida": "Engorde",
		"marca":      "Pronaca",
		"cantidad":   10,
		"precio":     25.5,
	})
	{
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/feed/"+feedID, nil)
		require.Equal(t, http.StatusOK, st)
		var f map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &f))
		assert.Equal(t, "Engorde", f["description"])
		assert.Equal(t, "Engorde", f["foodType"])
	}

	// 3) Porcino con referencia inexistente: 400 y nada persistido
	{
		st, env := doReq(t, ts.URL, http.MethodPost, "/api/livestock", map[string]any{
			"tag": "p-1", "breed": 1, "ageMonths": 4, "weightKg": 50,
			"clientId": clientID, "feedId": "missing",
		})
		assert.Equal(t, http.StatusBadRequest, st)
		assert.False(t, env.Success)

		_, list := doReq(t, ts.URL, http.MethodGet, "/api/livestock", nil)
		assert.JSONEq(t, `[]`, string(list.Data))
	}

	// 4) Porcino válido, tag normalizado
	pigID := createID(t, ts.URL, "/api/livestock", map[string]any{
		"identificacion": " p-1 ", "raza": 3, "edad": 6, "peso": 80.5,
		"clienteId": clientID, "alimentacionId": feedID,
	})
	{
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/livestock/"+pigID, nil)
		require.Equal(t, http.StatusOK, st)
		var p map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, "P-1", p["tag"])
		assert.Equal(t, "Duroc", p["breedLabel"])
	}

	// 4b) Búsqueda por identificación, sin distinguir mayúsculas
	{
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/livestock/tag/p-1", nil)
		require.Equal(t, http.StatusOK, st)
		var p map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, pigID, p["id"])

		st, _ = doReq(t, ts.URL, http.MethodGet, "/api/livestock/tag/NOPE", nil)
		assert.Equal(t, http.StatusNotFound, st)
	}

	// 5) Tag duplicado
	{
		st, _ := doReq(t, ts.URL, http.MethodPost, "/api/livestock", map[string]any{
			"tag": "P-1", "breed": 1, "ageMonths": 1, "weightKg": 10,
			"clientId": clientID, "feedId": feedID,
		})
		assert.Equal(t, http.StatusBadRequest, st)
	}

	// 6) Delete con dependientes bloqueado
	{
		st, env := doReq(t, ts.URL, http.MethodDelete, "/api/clients/"+clientID, nil)
		assert.Equal(t, http.StatusBadRequest, st)
		assert.Contains(t, env.Message, "1 livestock")

		st, _ = doReq(t, ts.URL, http.MethodDelete, "/api/feed/"+feedID, nil)
		assert.Equal(t, http.StatusBadRequest, st)
	}

	// 7) Filtros
	{
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/livestock?breed=3&clientId="+clientID, nil)
		require.Equal(t, http.StatusOK, st)
		var list []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, 1)

		st, _ = doReq(t, ts.URL, http.MethodGet, "/api/livestock?breed=9", nil)
		assert.Equal(t, http.StatusBadRequest, st)
	}

	// 8) Después de borrar el porcino, el cliente y la alimentación se pueden borrar
	{
		st, _ := doReq(t, ts.URL, http.MethodDelete, "/api/livestock/"+pigID, nil)
		require.Equal(t, http.StatusOK, st)
		st, _ = doReq(t, ts.URL, http.MethodDelete, "/api/clients/"+clientID, nil)
		assert.Equal(t, http.StatusOK, st)
		st, _ = doReq(t, ts.URL, http.MethodDelete, "/api/feed/"+feedID, nil)
		assert.Equal(t, http.StatusOK, st)
		st, _ = doReq(t, ts.URL, http.MethodGet, "/api/clients/"+clientID, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}
}

func TestHTTP_Reports(t *testing.T) {
	ts := newServer(t)

	clientID := createID(t, ts.URL, "/api/clients", map[string]any{"cedula": "111", "nombre": "Luis Perez"})
	createID(t, ts.URL, "/api/clients", map[string]any{"cedula": "222", "nombre": "Sin Cerdos"})
	feedID := createID(t, ts.URL, "/api/feed", map[string]any{"description": "Inicial"})
	for _, pig := range []map[string]any{
		{"tag": "A", "breed": 1, "ageMonths": 2, "weightKg": 20},
		{"tag": "B", "breed": 1, "ageMonths": 4, "weightKg": 30},
		{"tag": "C", "breed": 2, "ageMonths": 6, "weightKg": 45.5},
	} {
		pig["clientId"] = clientID
		pig["feedId"] = feedID
		createID(t, ts.URL, "/api/livestock", pig)
	}

	t.Run("client report", func(t *testing.T) {
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/clients/report/cedula/111", nil)
		require.Equal(t, http.StatusOK, st)
		var rep struct {
			TotalCount  int     `json:"totalCount"`
			TotalWeight float64 `json:"totalWeight"`
			Livestock   []struct {
				Feed *struct {
					Description string `json:"description"`
				} `json:"feed"`
			} `json:"livestock"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &rep))
		assert.Equal(t, 3, rep.TotalCount)
		assert.InDelta(t, 95.5, rep.TotalWeight, 1e-9)
		require.Len(t, rep.Livestock, 3)
		require.NotNil(t, rep.Livestock[0].Feed)
		assert.Equal(t, "Inicial", rep.Livestock[0].Feed.Description)

		st, _ = doReq(t, ts.URL, http.MethodGet, "/api/clients/report/cedula/999", nil)
		assert.Equal(t, http.StatusNotFound, st)
	})

	t.Run("general report", func(t *testing.T) {
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/clients/report/general", nil)
		require.Equal(t, http.StatusOK, st)
		var rep struct {
			Report  []json.RawMessage `json:"report"`
			Summary struct {
				ClientCount    int     `json:"clientCount"`
				LivestockCount int     `json:"livestockCount"`
				TotalWeightAll float64 `json:"totalWeightAll"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &rep))
		assert.Len(t, rep.Report, 2)
		assert.Equal(t, 2, rep.Summary.ClientCount)
		assert.Equal(t, 3, rep.Summary.LivestockCount)
		assert.InDelta(t, 95.5, rep.Summary.TotalWeightAll, 1e-9)
	})

	t.Run("breed statistics", func(t *testing.T) {
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/livestock/stats", nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{
			"totalCount": 3,
			"breeds": [
				{"breed": 1, "breedLabel": "York", "count": 2, "averageWeight": 25, "averageAge": 3},
				{"breed": 2, "breedLabel": "Hampshire", "count": 1, "averageWeight": 45.5, "averageAge": 6}
			]
		}`, string(env.Data))
	})

	t.Run("clients with livestock", func(t *testing.T) {
		st, env := doReq(t, ts.URL, http.MethodGet, "/api/clients/with-livestock", nil)
		require.Equal(t, http.StatusOK, st)
		var list []struct {
			LivestockCount int `json:"livestockCount"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, 1)
		assert.Equal(t, 3, list[0].LivestockCount)
	})

	t.Run("pdf", func(t *testing.T) {
		res, err := http.Get(ts.URL + "/api/clients/report/pdf/111")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
		assert.Contains(t, res.Header.Get("Content-Disposition"), "reporte-111.pdf")
		body, _ := io.ReadAll(res.Body)
		assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	})
}

func TestHTTP_GraphQL(t *testing.T) {
	ts := newServer(t)

	gql := func(query string) map[string]any {
		t.Helper()
		b, _ := json.Marshal(map[string]any{"query": query})
		res, err := http.Post(ts.URL+"/graphql", "application/json", bytes.NewReader(b))
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
		var out map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
		return out
	}

	out := gql(`mutation { createClient(input: {cedula: "555", displayName: "Rosa Vera"}) { id givenNames surnames } }`)
	require.Nil(t, out["errors"])
	created := out["data"].(map[string]any)["createClient"].(map[string]any)
	assert.Equal(t, "Rosa", created["givenNames"])
	assert.Equal(t, "Vera", created["surnames"])

	// La misma escritura es visible por REST.
	st, env := doReq(t, ts.URL, http.MethodGet, "/api/clients/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, st)
	assert.True(t, strings.Contains(string(env.Data), `"cedula":"555"`))
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newServer(t)

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Un rechazo del guard aparece en /metrics.
	st, _ := doReq(t, ts.URL, http.MethodPost, "/api/livestock", map[string]any{
		"tag": "X", "breed": 1, "ageMonths": 1, "weightKg": 1, "clientId": "nope", "feedId": "nope",
	})
	require.Equal(t, http.StatusBadRequest, st)

	res, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), `farm_integrity_rejections_total{kind="client_not_found"} 1`)
	assert.Contains(t, string(body), `farm_http_requests_total{method="POST",route="/api/livestock`)
}

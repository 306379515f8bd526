package themestore_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kastheco/orgtheme/config/themestore"
	"github.com/kastheco/orgtheme/internal/metrics"
	"github.com/kastheco/orgtheme/theme"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...themestore.Option) (*httptest.Server, themestore.Store) {
	t.Helper()
	store := themestore.NewTestSQLiteStore(t)
	srv := httptest.NewServer(themestore.NewHandler(store, opts...))
	t.Cleanup(srv.Close)
	return srv, store
}

func put(t *testing.T, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_PutAndGetTheme(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := put(t, srv.URL+"/v1/orgs/acme/theme", `{"accent":"#c4a7e7","mode":"dark"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, srv.URL+"/v1/orgs/acme/theme")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got themestore.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "acme", got.Org)
	assert.Equal(t, theme.Color("#c4a7e7"), got.Accent)
	assert.Equal(t, theme.ModeDark, got.Mode)
}

func TestServer_PutRejectsInvalidColor(t *testing.T) {
	srv, store := newTestServer(t)

	resp := put(t, srv.URL+"/v1/orgs/acme/theme", `{"accent":"#fff","mode":"light"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "invalid color format")

	resp = put(t, srv.URL+"/v1/orgs/acme/theme", `{"accent":"#ffffff","mode":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = put(t, srv.URL+"/v1/orgs/acme/theme", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err := store.Get("acme")
	assert.ErrorIs(t, err, themestore.ErrNotFound)
}

func TestServer_GetMissingTheme(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv.URL+"/v1/orgs/ghost/theme")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_DeleteTheme(t *testing.T) {
	srv, store := newTestServer(t)
	_, err := store.Put(themestore.Entry{Org: "acme", Accent: theme.DefaultAccent, Mode: theme.ModeLight})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/v1/orgs/acme/theme", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ListThemes(t *testing.T) {
	srv, store := newTestServer(t)
	for _, org := range []string{"b", "a"} {
		_, err := store.Put(themestore.Entry{Org: org, Accent: theme.DefaultAccent, Mode: theme.ModeLight})
		require.NoError(t, err)
	}

	resp := get(t, srv.URL+"/v1/orgs")
	var entries []themestore.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Org)
}

func TestServer_DerivedUsesStoredTheme(t *testing.T) {
	srv, store := newTestServer(t)
	_, err := store.Put(themestore.Entry{Org: "acme", Accent: "#eb6f92", Mode: theme.ModeDark})
	require.NoError(t, err)

	resp := get(t, srv.URL+"/v1/orgs/acme/theme/derived")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d theme.Derived
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, theme.Theme{Accent: "#eb6f92", Mode: theme.ModeDark}.Derive(), d)
}

func TestServer_DerivedFallsBackToDefaultTheme(t *testing.T) {
	fallback := theme.Theme{Accent: "#3e8fb0", Mode: theme.ModeLight}
	srv, _ := newTestServer(t, themestore.WithDefaultTheme(fallback))

	resp := get(t, srv.URL+"/v1/orgs/newcomer/theme/derived")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d theme.Derived
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, fallback, d.Theme)
	assert.Equal(t, theme.Palette("#3e8fb0"), d.Palette)
}

func TestServer_ChartPreview(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/v1/orgs/acme/theme/chart.png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "\x89PNG"))
}

func TestServer_Derive(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/v1/derive?color=%230891b2&amount=20&opacity=0.5")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got themestore.DeriveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, theme.AdjustedColor("rgba(28,165,198,0.5)"), got.Adjusted)
	assert.Equal(t, theme.White, got.ContrastText)
	assert.Equal(t, theme.Palette("#0891b2"), got.Palette)
	assert.Equal(t, "linear-gradient(to right, #0891b2, rgba(28,165,198,0.5))", got.Gradient)
}

func TestServer_DeriveDefaultsAndValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/v1/derive?color=%23000000")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got themestore.DeriveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, theme.AdjustedColor("rgba(0,0,0,1)"), got.Adjusted)

	for _, q := range []string{"color=teal", "", "color=%23000000&amount=x", "color=%23000000&opacity=half"} {
		resp := get(t, srv.URL+"/v1/derive?"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %q", q)
	}
}

func TestServer_Ping(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/v1/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/ping", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestServer_Metrics(t *testing.T) {
	m := metrics.New()
	srv, _ := newTestServer(t, themestore.WithMetrics(m))

	get(t, srv.URL+"/v1/derive?color=%230891b2")
	get(t, srv.URL+"/v1/orgs/ghost/theme")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("GET /v1/derive", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests().WithLabelValues("GET /v1/orgs/{org}/theme", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Derivations().WithLabelValues("adjust")))

	resp := get(t, srv.URL+"/metrics")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "orgtheme_http_requests_total")
}

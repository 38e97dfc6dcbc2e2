package server

import (
	"github.com/nglmq/chi-checksum/internal/auth"
	"github.com/nglmq/chi-checksum/internal/http-server/handlers/checksum"
	"github.com/nglmq/chi-checksum/internal/metrics"
	"github.com/nglmq/chi-checksum/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func post(t *testing.T, srv *httptest.Server, path, body, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestRouterWithoutAuth(t *testing.T) {
	srv := httptest.NewServer(NewRouter(memory.New(), metrics.New(), checksum.Options{}, ""))
	defer srv.Close()

	resp := post(t, srv, "/api/checksum/validate", `{"identifiers":["2103850262","2103850263"]}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = post(t, srv, "/api/checksum/check", "0000000000", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	metricsResp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `chichecksum_identifiers_total{status="valid"} 2`)
	assert.Contains(t, string(body), `chichecksum_identifiers_total{status="invalid_checksum"} 1`)
}

func TestRouterWithAuth(t *testing.T) {
	const secret = "router-secret"

	srv := httptest.NewServer(NewRouter(memory.New(), metrics.New(), checksum.Options{}, secret))
	defer srv.Close()

	resp := post(t, srv, "/api/checksum/check", "2103850262", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := auth.BuildJWTString(secret, "registry")
	require.NoError(t, err)

	resp = post(t, srv, "/api/checksum/check", "2103850262", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	metricsResp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
}

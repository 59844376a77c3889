package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusboard/internal/config"
	"campusboard/internal/services"
	"campusboard/internal/shared/testutil"
	"campusboard/pkg/contracts/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.DataConfig{
		Dir:               t.TempDir(),
		ValidateData:      true,
		FallbackSynthetic: true,
		Seed:              42,
	}
	svc := services.NewDatasetService(cfg, cfg.Dir, testutil.NewTestLogger(), nil, nil)
	h := NewDatasetHandler(svc, testutil.NewTestLogger())

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListDomains(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Domains []struct {
			Domain string           `json:"domain"`
			Years  domain.YearRange `json:"years"`
		} `json:"domains"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Domains, 9)
	assert.Equal(t, "teaching", body.Domains[0].Domain)
	assert.Equal(t, 2019, body.Domains[0].Years.Min)
}

func TestGetDataset(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/audit/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Meta    domain.DatasetMeta `json:"meta"`
		Records []json.RawMessage  `json:"records"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.DomainAudit, body.Meta.Domain)
	assert.Equal(t, domain.SourceSynthetic, body.Meta.Source)
	assert.Len(t, body.Records, body.Meta.Records)
}

func TestGetDatasetUnknownDomain(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/payroll/")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["detail"], "payroll")
}

func TestGetMetadata(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/labor/metadata")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var meta domain.DatasetMeta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&meta))
	assert.Equal(t, domain.DomainLabor, meta.Domain)
	assert.Equal(t, 2010, meta.YearMin)
	assert.Equal(t, 2025, meta.YearMax)
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/staff/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dados_servidores.csv")

	buf := make([]byte, 1024)
	n, _ := resp.Body.Read(buf)
	content := string(buf[:n])
	assert.Contains(t, content, "ano")
	assert.Contains(t, content, "docentes")
}

func TestPostRefresh(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/ombudsman/refresh", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var meta domain.DatasetMeta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&meta))
	assert.Equal(t, domain.DomainOmbudsman, meta.Domain)
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusboard/internal/dataset"
	"campusboard/pkg/contracts/domain"
)

func TestHealthReportsCachePresence(t *testing.T) {
	dir := t.TempDir()

	table := dataset.Table{
		Header: dataset.AuditColumns,
		Rows:   [][]string{{"2020", "IFPB - Campus Sousa", "10", "7", "70"}},
	}
	meta := domain.DatasetMeta{Domain: domain.DomainAudit, Records: 1}
	path := filepath.Join(dir, dataset.FileName(domain.DomainAudit))
	require.NoError(t, dataset.WriteWorkbook(path, table, meta, dataset.WriteGuards{AllowCreate: true}))

	h := NewHealthHandler("test", dir)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status        string          `json:"status"`
		Version       string          `json:"version"`
		DataDirExists bool            `json:"data_dir_exists"`
		Cached        map[string]bool `json:"cached"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "test", body.Version)
	assert.True(t, body.DataDirExists)
	assert.True(t, body.Cached["audit"])
	assert.False(t, body.Cached["teaching"])
}

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cx-metrics-go/internal/config"
	"cx-metrics-go/internal/logger"
	"cx-metrics-go/internal/processor"
)

func testServer(t *testing.T, datasetPath string) http.Handler {
	t.Helper()
	cfg := config.Config{DatasetPath: datasetPath, DemoLimit: 1}
	return newServer(cfg, processor.New(nil, nil, nil), logger.Discard()).routes()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestExtract(t *testing.T) {
	body := `{
		"response": {"How likely are you to recommend us?": 10, "What could we improve?": "Checkout felt slow"},
		"questions": []
	}`
	rec := httptest.NewRecorder()
	testServer(t, "").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res processor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Summary.NPSScore)
	assert.Equal(t, 10, *res.Summary.NPSScore)
	assert.Equal(t, "promoter", *res.Summary.NPSCategory)
	require.Len(t, res.Extracted.TextResponses, 1)
	assert.Equal(t, "Checkout felt slow", res.Extracted.TextResponses[0].Answer)
	assert.Nil(t, res.Sentiment)
}

func TestExtract_BadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t, "").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(`{"response": [1,2]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtract_WrongMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extract", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDatasetEndpoints(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"id", "How likely are you to recommend us?", "How easy was it to get help?"},
		{"r-1", 2, "very difficult"},
		{"r-2", 10, "easy"},
		{"r-3", 3, ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "responses.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	h := testServer(t, path)

	t.Run("rollup", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rollup", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var batch processor.BatchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
		assert.Len(t, batch.Results, 3)
		assert.Equal(t, 2, batch.Rollup.NPS.Detractors)
		assert.Equal(t, 1, batch.Rollup.NPS.Promoters)
		require.NotNil(t, batch.Rollup.NPS.Score)
		assert.InDelta(t, -33.3, *batch.Rollup.NPS.Score, 1e-9)
		assert.True(t, strings.HasPrefix(batch.ActionCard.Insight, "NPS is negative"))
	})

	t.Run("demo honours limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/demo", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var out []processor.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "r-1", out[0].ResponseID)
	})

	t.Run("dataset summary", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dataset", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_responses": 3`)
	})
}

func TestDatasetEndpoints_MissingFile(t *testing.T) {
	h := testServer(t, filepath.Join(t.TempDir(), "missing.xlsx"))
	for _, path := range []string{"/demo", "/rollup", "/dataset"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
	}
}

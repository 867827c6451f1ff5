package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maryrojas/rentabilidad-go/internal/cache"
	"github.com/maryrojas/rentabilidad-go/internal/dataset"
	"github.com/maryrojas/rentabilidad-go/internal/service"
)

func newTestRouter(t *testing.T, dataFile string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewProfitabilityService(
		cache.NewDatasetCache(dataset.Load),
		dataFile,
		[]string{"AU ESP", "TAT", "MY", "FS", "GS", "HD"},
		1.15,
	)

	return NewRouter(
		&Services{Profitability: svc},
		Options{AllowedOrigins: []string{"*"}, DefaultQuantity: 1000, MinQuantity: 1},
	)
}

func writeFixture(t *testing.T) string {
	t.Helper()
	content := "Canal,Tipo Huevo,Ciudad,Precio,EBITDA (Cartera),1era Milla,LOG UM VEH\n" +
		"TAT,aaa,Bogota,10,100,5,5\n" +
		"TAT,aaa,Cali,20,200,5,5\n" +
		"MY,aaa,Bogota,30,50,5,5\n" +
		"TAT,jumbo,Pereira,15,80,5,5\n"

	path := filepath.Join(t.TempDir(), "pyg.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func doGet(t *testing.T, router *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	body := make(map[string]interface{})
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetProductTypes(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/api/v1/profitability/product_types")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"aaa", "jumbo"}, body["product_types"])
}

func TestGetRanking(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/api/v1/profitability/ranking?product_type=aaa")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["no_data"])

	channels, ok := body["channels"].([]interface{})
	require.True(t, ok)
	require.Len(t, channels, 2)

	top := channels[0].(map[string]interface{})
	assert.Equal(t, "TAT", top["channel"])
	assert.Equal(t, 150.0, top["mean_ebitda"])
}

func TestGetRankingRequiresProductType(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, _ := doGet(t, router, "/api/v1/profitability/ranking")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRankingNoData(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/api/v1/profitability/ranking?product_type=zzz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["no_data"])
	assert.Empty(t, body["channels"])
}

func TestGetSimulation(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/api/v1/profitability/simulation?product_type=aaa&quantity=500")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 500.0, body["quantity"])

	rows, ok := body["rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 3)

	first := rows[0].(map[string]interface{})
	assert.Equal(t, "MY", first["channel"])
	assert.Equal(t, "Bogota", first["city"])
	assert.Equal(t, 15000.0, first["suggested_total"])
}

func TestGetSimulationDefaultQuantity(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/api/v1/profitability/simulation?product_type=aaa")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1000.0, body["quantity"])
}

func TestGetSimulationRejectsBadQuantity(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, _ := doGet(t, router, "/api/v1/profitability/simulation?product_type=aaa&quantity=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doGet(t, router, "/api/v1/profitability/simulation?product_type=aaa&quantity=-5")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doGet(t, router, "/api/v1/profitability/simulation?product_type=aaa&quantity=0.5")
	assert.Equal(t, http.StatusBadRequest, w.Code, "below the configured minimum of 1")
}

func TestGetStatus(t *testing.T) {
	router := newTestRouter(t, writeFixture(t))

	w, body := doGet(t, router, "/api/v1/profitability/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4.0, body["rows"])
	assert.Equal(t, 0.0, body["coerced_cells"])
}

func TestDataEndpointsUnavailableWithoutDataset(t *testing.T) {
	router := newTestRouter(t, filepath.Join(t.TempDir(), "missing.csv"))

	w, _ := doGet(t, router, "/api/v1/profitability/ranking?product_type=aaa")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// The process stays healthy even when the dataset cannot load.
	w, _ = doGet(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

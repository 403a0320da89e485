package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	config "github.com/ledosportsacademy/club-manager-go/config"
)

// Query validation happens before the store is touched, so a bad
// range or type fails fast even with no Mongo client configured.
func analysisRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/analysis", GetAnalysis(cfg))
	return r
}

func getAnalysis(r *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/analysis"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAnalysis_InvalidType(t *testing.T) {
	r := analysisRouter(testConfig())

	w := getAnalysis(r, "?type=budget")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid type: got status %d want 400", w.Code)
	}
}

func TestGetAnalysis_MalformedDate(t *testing.T) {
	r := analysisRouter(testConfig())

	w := getAnalysis(r, "?startDate=yesterday&endDate=2024-01-31")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed date: got status %d want 400", w.Code)
	}
}

func TestGetAnalysis_EndBeforeStart(t *testing.T) {
	r := analysisRouter(testConfig())

	w := getAnalysis(r, "?startDate=2024-02-01&endDate=2024-01-01")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("inverted range: got status %d want 400", w.Code)
	}
}

func TestGetAnalysis_PartialRange(t *testing.T) {
	r := analysisRouter(testConfig())

	w := getAnalysis(r, "?startDate=2024-01-01")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("partial range: got status %d want 400", w.Code)
	}
}

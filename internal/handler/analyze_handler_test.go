package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/domsight-api/internal/handler"
	"github.com/fuzumoe/domsight-api/internal/model"
	"github.com/fuzumoe/domsight-api/internal/service"
)

// stubAnalysisService returns canned results per URL.
type stubAnalysisService struct {
	reports map[string]model.Report
	errs    map[string]error
}

func (s *stubAnalysisService) Analyze(_ context.Context, rawURL string) (model.Report, error) {
	return s.reports[rawURL], s.errs[rawURL]
}

func (s *stubAnalysisService) AnalyzeAllAgents(_ context.Context, rawURL string) (model.Report, error) {
	return s.reports[rawURL], s.errs[rawURL]
}

func newRouter(svc service.AnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewAnalyzeHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestAnalyzeHandler_Post(t *testing.T) {
	goodReport := model.Report{
		"url":            "https://ok.example.com/",
		"dom_complexity": map[string]any{"total_elements": 3},
	}
	svc := &stubAnalysisService{
		reports: map[string]model.Report{"https://ok.example.com/": goodReport},
		errs:    map[string]error{},
	}
	r := newRouter(svc)

	t.Run("Success", func(t *testing.T) {
		body := `{"url":"https://ok.example.com/"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "https://ok.example.com/", got["url"])
	})

	t.Run("Invalid Payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"url":"not a url"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyzeHandler_FetchFailure(t *testing.T) {
	errReport := model.Report{
		"error": "connection refused",
		"url":   "https://down.example.com/",
	}
	svc := &stubAnalysisService{
		reports: map[string]model.Report{"https://down.example.com/": errReport},
		errs:    map[string]error{"https://down.example.com/": service.ErrFetchFailed},
	}
	r := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"url":"https://down.example.com/"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Upstream fetch failure maps to 502 and still returns the error report.
	assert.Equal(t, http.StatusBadGateway, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "connection refused", got["error"])
}

func TestAnalyzeHandler_Query(t *testing.T) {
	goodReport := model.Report{"url": "https://ok.example.com/"}
	svc := &stubAnalysisService{
		reports: map[string]model.Report{"https://ok.example.com/": goodReport},
		errs:    map[string]error{},
	}
	r := newRouter(svc)

	t.Run("Missing URL", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Summary Format", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze?url=https://ok.example.com/&format=summary", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "URL: https://ok.example.com/")
	})

	t.Run("CSV Format", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze?url=https://ok.example.com/&format=csv", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	})

	t.Run("Unknown Format", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze?url=https://ok.example.com/&format=yaml", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

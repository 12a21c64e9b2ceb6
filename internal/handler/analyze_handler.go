package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/domsight-api/internal/report"
	"github.com/fuzumoe/domsight-api/internal/service"
)

// AnalyzeHandler exposes the page analysis engine over HTTP.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
}

func NewAnalyzeHandler(svc service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: svc}
}

// AnalyzeInput is the POST payload for an analysis request.
type AnalyzeInput struct {
	URL       string `json:"url" binding:"required,url"`
	AllAgents bool   `json:"all_agents"`
}

// Analyze runs the full analysis for the URL in the JSON payload.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var in AnalyzeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	h.respond(c, in.URL, in.AllAgents)
}

// AnalyzeQuery runs the analysis for a URL passed as a query parameter.
func (h *AnalyzeHandler) AnalyzeQuery(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}
	h.respond(c, rawURL, c.Query("all_agents") == "true")
}

func (h *AnalyzeHandler) respond(c *gin.Context, rawURL string, allAgents bool) {
	var (
		result map[string]any
		err    error
	)
	if allAgents {
		result, err = h.analysisService.AnalyzeAllAgents(c.Request.Context(), rawURL)
	} else {
		result, err = h.analysisService.Analyze(c.Request.Context(), rawURL)
	}
	if err != nil {
		if errors.Is(err, service.ErrFetchFailed) {
			// The error report is still a valid result body.
			c.JSON(http.StatusBadGateway, result)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch report.Format(c.DefaultQuery("format", "json")) {
	case report.FormatJSON, "":
		c.JSON(http.StatusOK, result)
	case report.FormatSummary:
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
		report.WriteSummary(c.Writer, result)
	case report.FormatCSV:
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="analysis.csv"`)
		c.Status(http.StatusOK)
		report.WriteCSV(c.Writer, result)
	case report.FormatXLSX:
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="analysis.xlsx"`)
		c.Status(http.StatusOK)
		report.WriteXLSX(c.Writer, result)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
	}
}

func (h *AnalyzeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.Analyze)
	rg.GET("/analyze", h.AnalyzeQuery)
}

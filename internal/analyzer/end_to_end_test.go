package analyzer_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
	"github.com/fuzumoe/domsight-api/internal/fetcher"
)

func TestFullReport_Scenario(t *testing.T) {
	markup := `<html><head><title>Scenario</title></head><body>
	  <h1>Only Heading</h1>
	  <img src="/no-alt.png">
	</body></html>`

	headers := http.Header{}
	headers.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'")

	doc, err := fetcher.NewDocument("https://example.com/", markup, 200, headers, 120*time.Millisecond)
	require.NoError(t, err)

	report := analyzer.NewEngine().Analyze(doc)

	t.Run("SEO", func(t *testing.T) {
		headings := section(t, section(t, report, "seo_signals"), "headings")
		assert.Equal(t, true, headings["has_single_h1"])
	})

	t.Run("Accessibility", func(t *testing.T) {
		alt := section(t, section(t, report, "accessibility"), "alternative_text")
		assert.Equal(t, 1, alt["missing_alt"])
	})

	t.Run("Security", func(t *testing.T) {
		csp := section(t, section(t, report, "security"), "csp")
		assert.Equal(t, true, csp["present"])
		assert.Equal(t, 2, csp["directives"])
		assert.Equal(t, true, csp["default_src"])
		assert.Equal(t, true, csp["script_src"])
		assert.Equal(t, false, csp["unsafe_inline"])
	})

	t.Run("Fetch Info", func(t *testing.T) {
		fi := section(t, report, "fetch_info")
		assert.Equal(t, 200, fi["status_code"])
		assert.Equal(t, len(markup), fi["content_length"])
		assert.InDelta(t, 0.12, fi["response_time"].(float64), 1e-9)
	})
}

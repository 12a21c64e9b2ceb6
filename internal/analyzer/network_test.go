package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

func TestNetwork_Analyze(t *testing.T) {
	markup := `<html><head>
	  <link href="https://fonts.googleapis.com/css2?family=Inter" rel="stylesheet">
	  <script src="https://www.google-analytics.com/analytics.js"></script>
	  <script src="https://cdn.jsdelivr.net/npm/lib.js"></script>
	</head><body>
	  <img src="/logo.png">
	  <img src="https://static.example.com/hero.jpg">
	  <img width="1" height="1" src="https://tracker.net/pixel.gif">
	  <iframe src="https://www.youtube.com/embed/abc"></iframe>
	</body></html>`

	doc := mustDoc(t, "https://www.example.com/", markup)
	m := analyzer.Network{}.Analyze(doc)
	summary := section(t, m, "summary")

	t.Run("Domain Categories", func(t *testing.T) {
		categories := m["domain_categories"].(map[string]int)
		assert.Equal(t, 1, categories[analyzer.DomainSameOrigin], "the relative logo resolves to the page origin")
		assert.Equal(t, 1, categories[analyzer.DomainSubdomain])
		assert.Equal(t, 5, categories[analyzer.DomainThirdParty])
	})

	t.Run("CDN Detection", func(t *testing.T) {
		assert.Equal(t, []string{"google_cdn", "jsdelivr"}, m["cdn_usage"])
		assert.Equal(t, 2, summary["cdns_detected"])
	})

	t.Run("Third Party Services", func(t *testing.T) {
		services := section(t, m, "third_party_services")
		assert.Contains(t, services["analytics"], "www.google-analytics.com")
		assert.Contains(t, services["fonts"], "fonts.googleapis.com")
		assert.Contains(t, services["video"], "www.youtube.com")
		// Every category key is always present, even when empty.
		assert.Contains(t, services, "payment")
		assert.Equal(t, []string{}, services["payment"])
	})

	t.Run("Tracking Pixels", func(t *testing.T) {
		assert.Equal(t, 1, m["tracking_pixels"])
		assert.Equal(t, 1, summary["tracking_pixels_count"])
	})

	t.Run("External Requests", func(t *testing.T) {
		assert.Equal(t, 6, m["total_external_requests"], "everything off the exact page host counts")
	})
}

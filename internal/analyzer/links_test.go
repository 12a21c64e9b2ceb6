package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

func TestLinks_Analyze(t *testing.T) {
	markup := `<html><body>
	  <a href="#section">Jump</a>
	  <a href="mailto:team@example.com">Mail us</a>
	  <a href="tel:+123456789">Call</a>
	  <a href="/docs">Read the full documentation</a>
	  <a href="https://blog.example.com/post">Blog</a>
	  <a href="https://other.net/file.pdf">Download report here</a>
	</body></html>`

	doc := mustDoc(t, "https://www.example.com/page", markup)
	m := analyzer.Links{}.Analyze(doc)
	summary := section(t, m, "summary")

	t.Run("Buckets", func(t *testing.T) {
		assert.Equal(t, 6, summary["total_links"])
		assert.Equal(t, 1, summary["anchor_count"])
		assert.Equal(t, 1, summary["email_count"])
		assert.Equal(t, 1, summary["phone_count"])
		assert.Equal(t, 1, summary["internal_count"])
		assert.Equal(t, 1, summary["subdomain_count"])
		assert.Equal(t, 1, summary["external_count"])
	})

	t.Run("Internal Resolution", func(t *testing.T) {
		internal := m["internal_links"].([]string)
		require.Len(t, internal, 1)
		assert.Equal(t, "https://www.example.com/docs", internal[0])
	})

	t.Run("File Links", func(t *testing.T) {
		files := m["file_links"].(map[string][]string)
		assert.Equal(t, []string{"https://other.net/file.pdf"}, files["pdf"])
		assert.Equal(t, 1, summary["file_links_count"])
	})

	t.Run("Text Quality", func(t *testing.T) {
		texts := section(t, m, "link_text_analysis")
		docsEntry := section(t, texts, "/docs")
		assert.Equal(t, true, docsEntry["is_descriptive"], "more than two words is descriptive")

		pdfEntry := section(t, texts, "https://other.net/file.pdf")
		assert.Equal(t, true, pdfEntry["contains_here"])

		jumpEntry := section(t, texts, "#section")
		assert.Equal(t, false, jumpEntry["is_descriptive"])
	})

	t.Run("Anchor Target", func(t *testing.T) {
		anchors := m["anchor_links"].([]map[string]any)
		require.Len(t, anchors, 1)
		assert.Equal(t, "section", anchors[0]["target"])
	})
}

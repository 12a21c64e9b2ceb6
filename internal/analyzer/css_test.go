package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

func TestCSS_Analyze(t *testing.T) {
	markup := `<html><body>
	  <div id="hero" class="card__body card--wide" style="color: red; margin-top: 4px"></div>
	  <span id="hero" class="flex" style="color: blue"></span>
	</body></html>`

	doc := mustDoc(t, "https://example.com/", markup)
	m := analyzer.CSS{}.Analyze(doc)

	t.Run("Selectors", func(t *testing.T) {
		assert.Equal(t, 1, m["unique_ids"], "repeated ids collapse to one selector")
		assert.Equal(t, 3, m["unique_classes"])
	})

	t.Run("Naming Scores", func(t *testing.T) {
		assert.Equal(t, 2, m["bem_score"])
		assert.Equal(t, 1, m["atomic_css_score"])
	})

	t.Run("Inline Styles", func(t *testing.T) {
		assert.Equal(t, 2, m["inline_styles"])
		props := m["most_used_style_properties"].(map[string]int)
		assert.Equal(t, 2, props["color"])
		assert.Equal(t, 1, props["margin-top"])
	})
}

package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

func TestDOMComplexity_Analyze(t *testing.T) {
	markup := `<!DOCTYPE html>
	<html>
	  <head><title>t</title></head>
	  <body>
	    <div>
	      <p>one</p>
	      <p>two</p>
	    </div>
	  </body>
	</html>`

	doc := mustDoc(t, "https://example.com/", markup)
	m := analyzer.DOMComplexity{}.Analyze(doc)

	t.Run("Tree Shape", func(t *testing.T) {
		// html, head, title, body, div, p, p
		assert.Equal(t, 7, m["total_elements"])
		assert.Equal(t, 3, m["max_depth"], "p elements sit three levels below html")
		assert.Equal(t, 3, m["leaf_nodes"], "title and both p elements have no element children")
		assert.Equal(t, 4, m["branch_nodes"])
	})

	t.Run("Complexity Identity", func(t *testing.T) {
		total := m["total_elements"].(int)
		depth := m["max_depth"].(int)
		assert.Equal(t, total*depth, m["complexity_score"])
	})

	t.Run("Leaf Branch Partition", func(t *testing.T) {
		assert.Equal(t, m["total_elements"], m["leaf_nodes"].(int)+m["branch_nodes"].(int))
	})
}

func TestDOMComplexity_FlatDocument(t *testing.T) {
	// The parser normalizes bare text into html/head/body, so even a trivial
	// page scores total*depth with the depth factor floored at 1.
	doc := mustDoc(t, "https://example.com/", "plain text")
	m := analyzer.DOMComplexity{}.Analyze(doc)

	total := m["total_elements"].(int)
	assert.Equal(t, 3, total, "html, head and body are always present")
	assert.GreaterOrEqual(t, m["complexity_score"].(int), total, "score never drops below the element count")
}

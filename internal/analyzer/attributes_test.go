package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

func TestAttributes_IDConvention(t *testing.T) {
	markup := `<html><body>
	  <div id="a"></div>
	  <span id="a"></span>
	  <p id="b"></p>
	</body></html>`

	doc := mustDoc(t, "https://example.com/", markup)
	m := analyzer.Attributes{}.Analyze(doc)
	ids := section(t, m, "ids")

	t.Run("Duplicate Counting", func(t *testing.T) {
		// Repeats count their extra occurrences only: [a, a, b] keeps a
		// unique set of two and one duplicate hit for "a".
		assert.Equal(t, 3, ids["elements_with_ids"])
		assert.Equal(t, []string{"a", "b"}, ids["unique_ids"])
		assert.Equal(t, map[string]int{"a": 1}, ids["duplicate_ids"])
	})

	t.Run("ID Statistics", func(t *testing.T) {
		stats := section(t, ids, "id_statistics")
		assert.Equal(t, 3, stats["total_ids"])
		assert.Equal(t, 2, stats["unique_count"])
		assert.Equal(t, 1, stats["duplicate_count"])
		assert.Equal(t, 1, stats["min_length"])
		assert.Equal(t, 1, stats["max_length"])
	})
}

func TestAttributes_Classes(t *testing.T) {
	markup := `<html><body>
	  <div class="card__title card--dark nav-bar"></div>
	  <span class="flex"></span>
	  <p></p>
	</body></html>`

	doc := mustDoc(t, "https://example.com/", markup)
	m := analyzer.Attributes{}.Analyze(doc)
	classes := section(t, m, "classes")

	t.Run("Usage", func(t *testing.T) {
		assert.Equal(t, 2, classes["elements_with_classes"])
		assert.Equal(t, 1, classes["multiple_class_elements"])
		assert.Equal(t, 4, classes["unique_classes_count"])
		combos := classes["class_combinations"].(map[string]int)
		assert.Equal(t, 1, combos["card--dark card__title nav-bar"], "combination keys are sorted")
	})

	t.Run("BEM Buckets", func(t *testing.T) {
		// Element wins over modifier wins over block; each token lands in
		// exactly one bucket.
		bem := section(t, classes, "bem_usage")
		assert.Equal(t, 1, bem["elements"])
		assert.Equal(t, 1, bem["modifiers"])
		assert.Equal(t, 1, bem["blocks"])
	})

	t.Run("Atomic Classes", func(t *testing.T) {
		// "flex" is a known utility; short tokens also qualify.
		assert.Equal(t, 1, classes["atomic_class_count"])
	})
}

func TestAttributes_Buckets(t *testing.T) {
	markup := `<html><body>
	  <div data-widget="x" aria-label="menu" custom-thing="1" id="main"></div>
	</body></html>`

	doc := mustDoc(t, "https://example.com/", markup)
	m := analyzer.Attributes{}.Analyze(doc)

	assert.Equal(t, map[string]int{"data-widget": 1}, m["data_attributes"])
	assert.Equal(t, map[string]int{"aria-label": 1}, m["aria_attributes"])
	assert.Equal(t, map[string]int{"custom-thing": 1}, m["custom_attributes"], "well-known names never count as custom")
	assert.Equal(t, 4, m["total_attributes"])
}

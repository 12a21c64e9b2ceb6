package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

func TestForms_Analyze(t *testing.T) {
	markup := `<html><body>
	  <form method="POST">
	    <label for="email">Email</label>
	    <input type="email" id="email" required autocomplete="email">
	    <input type="password" minlength="8">
	    <input type="checkbox">
	    <textarea placeholder="Notes"></textarea>
	    <select><option>a</option></select>
	    <button type="submit">Send</button>
	  </form>
	  <form>
	    <input>
	  </form>
	</body></html>`

	doc := mustDoc(t, "https://example.com/", markup)
	m := analyzer.Forms{}.Analyze(doc)

	t.Run("Methods", func(t *testing.T) {
		methods := m["form_methods"].(map[string]int)
		assert.Equal(t, 1, methods["post"], "methods are lowercased")
		assert.Equal(t, 1, methods["get"], "missing method defaults to get")
	})

	t.Run("Input Types", func(t *testing.T) {
		types := m["input_types"].(map[string]int)
		assert.Equal(t, 1, types["email"])
		assert.Equal(t, 1, types["password"])
		// The bare input, the textarea and the select all default to text.
		assert.Equal(t, 3, types["text"])
		assert.Equal(t, 1, types["submit"])
	})

	t.Run("Validation", func(t *testing.T) {
		validation := m["validation_attributes"].(map[string]int)
		assert.Equal(t, 1, validation["required"])
		assert.Equal(t, 1, validation["minlength"])
	})

	t.Run("Field Statistics", func(t *testing.T) {
		fields := section(t, m, "field_statistics")
		assert.Equal(t, 2, m["total_forms"])
		assert.Equal(t, 6, fields["total_fields"])
		assert.Equal(t, 1, fields["required_fields"])
		assert.Equal(t, 5, fields["optional_fields"])
		assert.Equal(t, 1, fields["password_fields"])
		assert.Equal(t, 1, fields["checkboxes"])
		assert.Equal(t, 1, fields["select_dropdowns"])
		assert.Equal(t, 1, fields["textareas"])
	})

	t.Run("User Experience", func(t *testing.T) {
		ux := section(t, m, "user_experience")
		assert.Equal(t, 1, ux["placeholders"])
		assert.Equal(t, 1, ux["labels"])
		assert.Equal(t, 0, ux["fieldsets"])
	})

	t.Run("Autocomplete", func(t *testing.T) {
		ac := m["autocomplete_usage"].(map[string]int)
		assert.Equal(t, map[string]int{"email": 1}, ac)
	})
}

package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// mustDoc parses markup as a page served from rawURL.
func mustDoc(t *testing.T, rawURL, markup string) *fetcher.Document {
	t.Helper()
	doc, err := fetcher.NewDocumentFromHTML(rawURL, markup)
	require.NoError(t, err)
	return doc
}

// section extracts a nested metrics block from an analyzer result.
func section(t *testing.T, m model.Metrics, key string) model.Metrics {
	t.Helper()
	nested, ok := m[key].(map[string]any)
	require.True(t, ok, "expected %q to be a metrics map, got %T", key, m[key])
	return nested
}

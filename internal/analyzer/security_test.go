package analyzer_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
	"github.com/fuzumoe/domsight-api/internal/fetcher"
)

func docWithHeaders(t *testing.T, headers http.Header) *fetcher.Document {
	t.Helper()
	doc, err := fetcher.NewDocument("https://example.com/", "<html></html>", 200, headers, 0)
	require.NoError(t, err)
	return doc
}

func TestSecurity_Score(t *testing.T) {
	t.Run("No Headers", func(t *testing.T) {
		m := analyzer.Security{}.Analyze(docWithHeaders(t, http.Header{}))
		assert.Equal(t, 0.0, m["security_score"])
		assert.Empty(t, m["headers_present"])
	})

	t.Run("All Headers", func(t *testing.T) {
		h := http.Header{}
		for _, name := range []string{
			"Strict-Transport-Security", "Content-Security-Policy",
			"X-Frame-Options", "X-Content-Type-Options", "X-XSS-Protection",
			"Referrer-Policy", "Permissions-Policy",
			"Cross-Origin-Embedder-Policy", "Cross-Origin-Opener-Policy",
			"Cross-Origin-Resource-Policy",
		} {
			h.Set(name, "x")
		}
		m := analyzer.Security{}.Analyze(docWithHeaders(t, h))
		assert.Equal(t, 100.0, m["security_score"])
	})

	t.Run("Partial Weighted", func(t *testing.T) {
		h := http.Header{}
		h.Set("Content-Security-Policy", "default-src 'self'")
		m := analyzer.Security{}.Analyze(docWithHeaders(t, h))
		assert.Equal(t, 15.0, m["security_score"], "CSP alone carries its weight of the total")
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		h := http.Header{}
		h.Set("strict-transport-security", "max-age=63072000")
		m := analyzer.Security{}.Analyze(docWithHeaders(t, h))
		assert.Equal(t, 10.0, m["security_score"])
	})
}

func TestSecurity_CSP(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'")
	m := analyzer.Security{}.Analyze(docWithHeaders(t, h))
	csp := section(t, m, "csp")

	assert.Equal(t, true, csp["present"])
	assert.Equal(t, 2, csp["directives"])
	assert.Equal(t, true, csp["default_src"])
	assert.Equal(t, true, csp["script_src"])
	assert.Equal(t, true, csp["unsafe_inline"])
	assert.Equal(t, false, csp["unsafe_eval"])
	assert.Equal(t, false, csp["report_uri"])
}

func TestSecurity_Cookies(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		m := analyzer.Security{}.Analyze(docWithHeaders(t, http.Header{}))
		cookies := section(t, m, "cookies")
		assert.Equal(t, false, cookies["present"])
	})

	t.Run("Flags", func(t *testing.T) {
		h := http.Header{}
		h.Add("Set-Cookie", "a=1; Secure; HttpOnly; SameSite=Lax")
		h.Add("Set-Cookie", "b=2")
		m := analyzer.Security{}.Analyze(docWithHeaders(t, h))
		cookies := section(t, m, "cookies")
		assert.Equal(t, true, cookies["present"])
		assert.Equal(t, true, cookies["secure"])
		assert.Equal(t, true, cookies["httponly"])
		assert.Equal(t, true, cookies["samesite_lax"])
		assert.Equal(t, false, cookies["samesite_strict"])
	})
}

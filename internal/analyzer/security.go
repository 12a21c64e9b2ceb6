package analyzer

import (
	"strings"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Security scores the response headers against the weighted header table
// (full compliance is 100) and breaks down CSP directives and cookie flags.
type Security struct{}

func (Security) Name() string { return "security" }

func (Security) Analyze(doc *fetcher.Document) model.Metrics {
	present := model.Metrics{}
	totalWeight, score := 0, 0
	for _, h := range securityHeaders {
		totalWeight += h.Weight
		// http.Header.Get is case-insensitive, so lowercase header maps
		// still match the canonical table names.
		if v := doc.Headers.Get(h.Name); v != "" {
			score += h.Weight
			present[h.Name] = truncate(v, 200)
		}
	}

	securityScore := 0.0
	if totalWeight > 0 {
		securityScore = float64(score) / float64(totalWeight) * 100
	}

	return model.Metrics{
		"headers_present": present,
		"security_score":  securityScore,
		"csp":             analyzeCSP(doc.Headers.Get("Content-Security-Policy")),
		"cookies":         analyzeCookies(strings.Join(doc.Headers.Values("Set-Cookie"), ", ")),
	}
}

func analyzeCSP(csp string) model.Metrics {
	if csp == "" {
		return model.Metrics{"present": false}
	}
	return model.Metrics{
		"present":       true,
		"directives":    len(strings.Split(csp, ";")),
		"unsafe_inline": strings.Contains(csp, "unsafe-inline"),
		"unsafe_eval":   strings.Contains(csp, "unsafe-eval"),
		"default_src":   strings.Contains(csp, "default-src"),
		"script_src":    strings.Contains(csp, "script-src"),
		"style_src":     strings.Contains(csp, "style-src"),
		"report_uri":    strings.Contains(csp, "report-uri") || strings.Contains(csp, "report-to"),
	}
}

func analyzeCookies(cookies string) model.Metrics {
	if cookies == "" {
		return model.Metrics{"present": false}
	}
	return model.Metrics{
		"present":         true,
		"secure":          strings.Contains(cookies, "Secure"),
		"httponly":        strings.Contains(cookies, "HttpOnly"),
		"samesite":        strings.Contains(cookies, "SameSite"),
		"samesite_strict": strings.Contains(cookies, "SameSite=Strict"),
		"samesite_lax":    strings.Contains(cookies, "SameSite=Lax"),
	}
}

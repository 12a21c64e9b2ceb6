package analyzer

import (
	"net/url"
	"strings"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
)

// Domain classification categories. Every resolvable URL falls into exactly
// one of these relative to the analyzed page.
const (
	DomainSameOrigin = "same_origin"
	DomainSubdomain  = "subdomain"
	DomainThirdParty = "third_party"
)

// ClassifyDomain resolves raw (absolute, relative, or protocol-relative)
// against the analyzed page and classifies it as same_origin, subdomain, or
// third_party. Unparseable input classifies as same_origin with the original
// string unchanged; this never fails.
func ClassifyDomain(doc *fetcher.Document, raw string) (category, absURL string) {
	p, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return DomainSameOrigin, raw
	}
	abs := doc.URL.ResolveReference(p)
	if abs.Host == "" {
		return DomainSameOrigin, raw
	}
	switch {
	case abs.Scheme+"://"+abs.Host == doc.Origin:
		return DomainSameOrigin, abs.String()
	case fetcher.RegisteredDomain(abs.Hostname()) == doc.RegisteredDomain:
		return DomainSubdomain, abs.String()
	default:
		return DomainThirdParty, abs.String()
	}
}

// resolveURL resolves raw against the analyzed page, returning the absolute
// form and whether it resolved to a URL with a host.
func resolveURL(doc *fetcher.Document, raw string) (string, bool) {
	p, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	abs := doc.URL.ResolveReference(p)
	if abs.Host == "" {
		return "", false
	}
	return abs.String(), true
}

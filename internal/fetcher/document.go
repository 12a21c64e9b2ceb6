package fetcher

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"golang.org/x/net/publicsuffix"
)

// Document is the immutable per-analysis bundle: one parsed page plus the
// response metadata it arrived with. Analyzers read it, never modify it.
// A Document is never partially populated; fetch failures yield (nil, err).
type Document struct {
	URL              *url.URL
	Origin           string
	RegisteredDomain string
	HTML             string
	Doc              *goquery.Document
	StatusCode       int
	Headers          http.Header
	ContentLength    int
	Elapsed          time.Duration
}

// NewDocument parses rawHTML and derives the origin and registered domain
// from rawURL. Response metadata is supplied by the caller.
func NewDocument(rawURL, rawHTML string, status int, headers http.Header, elapsed time.Duration) (*Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	if headers == nil {
		headers = http.Header{}
	}
	return &Document{
		URL:              u,
		Origin:           u.Scheme + "://" + u.Host,
		RegisteredDomain: RegisteredDomain(u.Hostname()),
		HTML:             rawHTML,
		Doc:              doc,
		StatusCode:       status,
		Headers:          headers,
		ContentLength:    len(rawHTML),
		Elapsed:          elapsed,
	}, nil
}

// RegisteredDomain returns the eTLD+1 for host, falling back to the host
// itself when the public suffix list cannot resolve it (IPs, localhost).
func RegisteredDomain(host string) string {
	if host == "" {
		return ""
	}
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return d
}

// NewDocumentFromHTML builds a Document for an in-memory page, used by tests
// and by callers that already hold the markup.
func NewDocumentFromHTML(rawURL, rawHTML string) (*Document, error) {
	return NewDocument(rawURL, rawHTML, http.StatusOK, nil, 0)
}

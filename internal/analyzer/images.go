package analyzer

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Images classifies every img by alt state, lazy loading, declared size,
// source format and location, and counts responsive usage across img and
// picture elements.
//
// The location split here is deliberately two-way (same_domain/external,
// plus relative): subdomains count as external, unlike the three-way link
// classification.
type Images struct{}

func (Images) Name() string { return "image_analysis" }

func (Images) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		total       int
		withAlt     int
		withoutAlt  int
		emptyAlt    int
		lazy        int
		base64      int
		srcsetUsage int
		responsive  int
		sizes       = map[string]int{}
		formats     = map[string]int{}
		locations   = map[string]int{}
	)

	doc.Doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		total++

		// Alt state is exactly one of missing, empty, present; empty still
		// counts as having the attribute.
		if alt, ok := sel.Attr("alt"); ok {
			withAlt++
			if strings.TrimSpace(alt) == "" {
				emptyAlt++
			}
		} else {
			withoutAlt++
		}

		if sel.AttrOr("loading", "") == "lazy" {
			lazy++
		}

		width, hasWidth := sel.Attr("width")
		height, hasHeight := sel.Attr("height")
		if hasWidth || hasHeight {
			if width == "" {
				width = "auto"
			}
			if height == "" {
				height = "auto"
			}
			sizes[width+"x"+height]++
		}

		src := sel.AttrOr("src", "")
		if strings.HasPrefix(src, "data:image") {
			base64++
		} else if src != "" {
			lower := strings.ToLower(src)
			for _, ext := range imageExtensions {
				if strings.Contains(lower, "."+ext) {
					formats[ext]++
					break
				}
			}
			locations[imageLocation(doc, src)]++
		}

		if _, ok := sel.Attr("srcset"); ok {
			srcsetUsage++
			responsive++
		}
	})

	pictures := doc.Doc.Find("picture").Length()
	// Pictures add to the responsive count on top of srcset imgs, so the
	// ratio can exceed 1.
	responsive += pictures

	m := model.Metrics{
		"total_images":      total,
		"with_alt":          withAlt,
		"without_alt":       withoutAlt,
		"empty_alt":         emptyAlt,
		"lazy_loading":      lazy,
		"size_attributes":   sizes,
		"formats":           formats,
		"image_locations":   locations,
		"base64_images":     base64,
		"svg_images":        doc.Doc.Find("svg").Length(),
		"picture_elements":  pictures,
		"srcset_usage":      srcsetUsage,
		"responsive_images": responsive,
	}
	if total > 0 {
		m["alt_text_ratio"] = float64(withAlt) / float64(total)
		m["lazy_loading_ratio"] = float64(lazy) / float64(total)
		m["responsive_ratio"] = float64(responsive) / float64(total)
	}
	return m
}

// imageLocation buckets a src as same_domain, external, or relative.
func imageLocation(doc *fetcher.Document, src string) string {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return "relative"
	}
	parsed, err := url.Parse(src)
	if err != nil || parsed.Host != doc.URL.Host {
		return "external"
	}
	return "same_domain"
}

package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

var resourceHintRels = []string{"dns-prefetch", "preconnect", "prefetch", "preload", "prerender"}

// Performance collects loading hints: resource hints, lazy loading, font
// strategy, image formats, service worker usage, and coarse web-vitals
// candidate counts.
type Performance struct{}

func (Performance) Name() string { return "performance_metrics" }

func (Performance) Analyze(doc *fetcher.Document) model.Metrics {
	hints := map[string][]string{}
	doc.Doc.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
		rel := sel.AttrOr("rel", "")
		if lo.Contains(resourceHintRels, rel) {
			hints[rel] = append(hints[rel], sel.AttrOr("href", ""))
		}
	})

	lazyImages := doc.Doc.Find(`img[loading="lazy"]`).Length()
	lazyIframes := doc.Doc.Find(`iframe[loading="lazy"]`).Length()

	var fontStrategy []string
	doc.Doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if strings.Contains(href, "fonts.googleapis.com") {
			fontStrategy = append(fontStrategy, "Google Fonts")
		} else if strings.Contains(href, "use.typekit.net") {
			fontStrategy = append(fontStrategy, "Adobe Fonts")
		}
	})

	// Formats are counted over img and source elements, via src or srcset.
	formats := map[string]int{}
	doc.Doc.Find("img, source").Each(func(_ int, sel *goquery.Selection) {
		src := sel.AttrOr("src", "")
		if src == "" {
			src = sel.AttrOr("srcset", "")
		}
		lower := strings.ToLower(src)
		switch {
		case strings.Contains(lower, ".webp"):
			formats["webp"]++
		case strings.Contains(lower, ".avif"):
			formats["avif"]++
		case strings.Contains(lower, ".jpg"), strings.Contains(lower, ".jpeg"):
			formats["jpeg"]++
		case strings.Contains(lower, ".png"):
			formats["png"]++
		case strings.Contains(lower, ".svg"):
			formats["svg"]++
		case strings.Contains(lower, ".gif"):
			formats["gif"]++
		}
	})

	serviceWorker := false
	doc.Doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), "serviceWorker") {
			serviceWorker = true
			return false
		}
		return true
	})

	clsRisk := 0
	doc.Doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		if strings.Contains(sel.AttrOr("style", ""), "position:absolute") {
			clsRisk++
		}
	})

	return model.Metrics{
		"resource_hints": hints,
		"lazy_loading": model.Metrics{
			"images":  lazyImages,
			"iframes": lazyIframes,
		},
		"font_loading_strategy": fontStrategy,
		"image_optimization": model.Metrics{
			"formats":           formats,
			"responsive_images": doc.Doc.Find("picture").Length(),
			"srcset_usage":      doc.Doc.Find("[srcset]").Length(),
		},
		"service_worker": serviceWorker,
		"web_vitals_hints": model.Metrics{
			"lcp_candidates":           doc.Doc.Find("img, video, svg").Length(),
			"cls_risk_elements":        clsRisk,
			"fid_interactive_elements": doc.Doc.Find("button, a, input").Length(),
		},
	}
}

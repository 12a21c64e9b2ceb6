package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Flat per-resource size estimates for externals that are never fetched.
const (
	estExternalCSS = 30_000
	estExternalJS  = 50_000
	estImage       = 100_000
	estFont        = 50_000
)

// PageWeight estimates the total transfer size from the markup alone:
// measured HTML plus fixed per-resource estimates for externals.
type PageWeight struct{}

func (PageWeight) Name() string { return "page_weight" }

func (PageWeight) Analyze(doc *fetcher.Document) model.Metrics {
	htmlSize := doc.ContentLength

	cssSize := 0
	doc.Doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		cssSize += len(sel.Text())
	})
	stylesheets := doc.Doc.Find(`link[rel="stylesheet"]`).Length()
	cssSize += stylesheets * estExternalCSS

	jsSize := 0
	scripts := doc.Doc.Find("script")
	scripts.Each(func(_ int, sel *goquery.Selection) {
		if _, ok := sel.Attr("src"); ok {
			jsSize += estExternalJS
		} else {
			jsSize += len(sel.Text())
		}
	})

	images := doc.Doc.Find("img, source").Length()
	imageSize := images * estImage

	fonts := 0
	doc.Doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		if strings.Contains(strings.ToLower(sel.AttrOr("href", "")), "font") {
			fonts++
		}
	})
	fontSize := fonts * estFont

	total := htmlSize + cssSize + jsSize + imageSize + fontSize

	m := model.Metrics{
		"html_size":        htmlSize,
		"estimated_css":    cssSize,
		"estimated_js":     jsSize,
		"estimated_images": imageSize,
		"estimated_fonts":  fontSize,
		"estimated_total":  total,
		"resource_counts": model.Metrics{
			"stylesheets": stylesheets,
			"scripts":     scripts.Length(),
			"images":      images,
			"fonts":       fonts,
			"iframes":     doc.Doc.Find("iframe").Length(),
			"videos":      doc.Doc.Find("video").Length(),
			"audio":       doc.Doc.Find("audio").Length(),
		},
		"optimization_potential": model.Metrics{
			"minification_possible":  htmlSize > 10_000,
			"image_optimization":     imageSize > 500_000,
			"lazy_loading_benefit":   images > 10,
			"code_splitting_benefit": jsSize > 200_000,
			"font_optimization":      fonts > 3,
		},
	}
	if total > 0 {
		m["size_distribution"] = model.Metrics{
			"html_percentage":   float64(htmlSize) / float64(total) * 100,
			"css_percentage":    float64(cssSize) / float64(total) * 100,
			"js_percentage":     float64(jsSize) / float64(total) * 100,
			"images_percentage": float64(imageSize) / float64(total) * 100,
			"fonts_percentage":  float64(fontSize) / float64(total) * 100,
		}
	}
	return m
}

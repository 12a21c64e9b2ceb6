package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

var stylePropertyRe = regexp.MustCompile(`([a-z-]+):`)

// CSS summarizes selector hygiene: unique ids and classes, BEM and atomic
// naming scores, and inline style usage.
type CSS struct{}

func (CSS) Name() string { return "css_analysis" }

func (CSS) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		ids          = map[string]struct{}{}
		classes      = map[string]struct{}{}
		bemScore     int
		atomicScore  int
		inlineStyles int
		properties   = map[string]int{}
	)

	forEachElement(doc, func(n *html.Node, _ int) {
		if id, ok := attrVal(n, "id"); ok && id != "" {
			ids[id] = struct{}{}
		}
		for _, cls := range classTokens(n) {
			classes[cls] = struct{}{}
			if strings.Contains(cls, "__") || strings.Contains(cls, "--") || strings.Contains(cls, "-") {
				bemScore++
			}
			if _, util := atomicUtilities[cls]; util || len(cls) <= 5 {
				atomicScore++
			}
		}
		if style, ok := attrVal(n, "style"); ok {
			inlineStyles++
			for _, match := range stylePropertyRe.FindAllStringSubmatch(style, -1) {
				properties[match[1]]++
			}
		}
	})

	return model.Metrics{
		"unique_ids":                 len(ids),
		"unique_classes":             len(classes),
		"bem_score":                  bemScore,
		"atomic_css_score":           atomicScore,
		"inline_styles":              inlineStyles,
		"most_used_style_properties": topN(properties, 10),
	}
}

package analyzer

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Scripts splits scripts into external and inline, tracks loading attributes
// and source domains for the former, and sizes, minification, framework
// signatures and ES6 feature usage for the latter.
type Scripts struct{}

func (Scripts) Name() string { return "script_analysis" }

func (Scripts) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		total           int
		inline          int
		external        int
		async           int
		deferred        int
		moduleScripts   int
		nomoduleScripts int
		minified        int
		sources         = map[string]int{}
		domains         = map[string]struct{}{}
		scriptTypes     = map[string]int{}
		frameworks      []string
		sizes           []int
		es6             = map[string]int{
			"arrow_functions":   0,
			"const_let":         0,
			"template_literals": 0,
			"destructuring":     0,
			"async_await":       0,
		}
	)

	doc.Doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		total++

		scriptType := sel.AttrOr("type", "text/javascript")
		scriptTypes[scriptType]++
		if scriptType == "module" {
			moduleScripts++
		}
		if _, ok := sel.Attr("nomodule"); ok {
			nomoduleScripts++
		}

		if src, ok := sel.Attr("src"); ok {
			external++
			if _, ok := sel.Attr("async"); ok {
				async++
			}
			if _, ok := sel.Attr("defer"); ok {
				deferred++
			}
			if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
				if parsed, err := url.Parse(src); err == nil && parsed.Host != "" {
					sources[parsed.Host]++
					domains[parsed.Host] = struct{}{}
				}
			}
			return
		}

		inline++
		content := sel.Text()
		if content == "" {
			return
		}
		sizes = append(sizes, len(content))

		// Minified: effectively one line of substantial code.
		if len(strings.Split(content, "\n")) < 3 && len(content) > 500 {
			minified++
		}

		for _, fw := range frameworkSignatures {
			for _, sig := range fw.Signatures {
				if strings.Contains(content, sig) {
					if !lo.Contains(frameworks, fw.Name) {
						frameworks = append(frameworks, fw.Name)
					}
					break
				}
			}
		}

		if strings.Contains(content, "=>") {
			es6["arrow_functions"]++
		}
		if strings.Contains(content, "const ") || strings.Contains(content, "let ") {
			es6["const_let"]++
		}
		if strings.Contains(content, "`") {
			es6["template_literals"]++
		}
		// Coarse on purpose: any braces pass for destructuring.
		if strings.Contains(content, "{") && strings.Contains(content, "}") {
			es6["destructuring"]++
		}
		if strings.Contains(content, "async ") || strings.Contains(content, "await ") {
			es6["async_await"]++
		}
	})

	externalDomains := lo.Keys(domains)
	sort.Strings(externalDomains)

	m := model.Metrics{
		"total_scripts":          total,
		"inline_scripts":         inline,
		"external_scripts":       external,
		"async_scripts":          async,
		"defer_scripts":          deferred,
		"module_scripts":         moduleScripts,
		"nomodule_scripts":       nomoduleScripts,
		"minified_scripts":       minified,
		"script_sources":         sources,
		"script_types":           scriptTypes,
		"frameworks_detected":    frameworks,
		"es6_features":           es6,
		"external_domains":       externalDomains,
		"external_domains_count": len(externalDomains),
	}
	if len(sizes) > 0 {
		m["script_size_stats"] = model.Metrics{
			"total_size":   lo.Sum(sizes),
			"average_size": mean(sizes),
			"median_size":  median(sizes),
			"min_size":     lo.Min(sizes),
			"max_size":     lo.Max(sizes),
		}
	}
	return m
}

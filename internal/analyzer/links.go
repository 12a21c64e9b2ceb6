package analyzer

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Links inventories every anchor: fragment/mailto/tel buckets, the three-way
// domain split for navigable targets, protocol and file-extension tallies,
// and per-link text quality flags.
type Links struct{}

func (Links) Name() string { return "link_analysis" }

func (Links) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		anchorLinks    []model.Metrics
		emailLinks     []model.Metrics
		phoneLinks     []model.Metrics
		internalLinks  []string
		externalLinks  []model.Metrics
		subdomainLinks []model.Metrics
		protocols      = map[string]int{}
		fileLinks      = map[string][]string{}
		textAnalysis   = model.Metrics{}
		total          int
	)

	doc.Doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		total++
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		text := strings.TrimSpace(sel.Text())

		switch {
		case strings.HasPrefix(href, "#"):
			target := "top"
			if len(href) > 1 {
				target = href[1:]
			}
			anchorLinks = append(anchorLinks, model.Metrics{
				"href":   href,
				"text":   text,
				"target": target,
			})

		case strings.HasPrefix(href, "mailto:"):
			emailLinks = append(emailLinks, model.Metrics{
				"email": strings.TrimPrefix(href, "mailto:"),
				"text":  text,
			})

		case strings.HasPrefix(href, "tel:"):
			phoneLinks = append(phoneLinks, model.Metrics{
				"phone": strings.TrimPrefix(href, "tel:"),
				"text":  text,
			})

		case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"),
			strings.HasPrefix(href, "//"), strings.HasPrefix(href, "/"):
			category, absURL := ClassifyDomain(doc, href)
			parsed, err := url.Parse(absURL)
			if err != nil {
				return
			}

			protocols[parsed.Scheme]++

			switch category {
			case DomainSameOrigin:
				internalLinks = append(internalLinks, absURL)
			case DomainSubdomain:
				subdomainLinks = append(subdomainLinks, model.Metrics{
					"url":       absURL,
					"text":      text,
					"subdomain": parsed.Host,
				})
			default:
				externalLinks = append(externalLinks, model.Metrics{
					"url":    absURL,
					"text":   text,
					"domain": parsed.Host,
				})
			}

			if ext := fileExtension(parsed.Path); ext != "" {
				fileLinks[ext] = append(fileLinks[ext], absURL)
			}
		}

		if text != "" {
			words := len(strings.Fields(text))
			lower := strings.ToLower(text)
			textAnalysis[href] = model.Metrics{
				"text":           text,
				"length":         len(text),
				"word_count":     words,
				"is_descriptive": words > 2,
				"contains_click": strings.Contains(lower, "click"),
				"contains_here":  strings.Contains(lower, "here"),
			}
		}
	})

	fileCount := lo.SumBy(lo.Values(fileLinks), func(urls []string) int { return len(urls) })

	return model.Metrics{
		"anchor_links":       anchorLinks,
		"email_links":        emailLinks,
		"phone_links":        phoneLinks,
		"internal_links":     internalLinks,
		"external_links":     externalLinks,
		"subdomain_links":    subdomainLinks,
		"protocol_analysis":  protocols,
		"file_links":         fileLinks,
		"link_text_analysis": textAnalysis,
		"summary": model.Metrics{
			"total_links":      total,
			"internal_count":   len(internalLinks),
			"external_count":   len(externalLinks),
			"subdomain_count":  len(subdomainLinks),
			"anchor_count":     len(anchorLinks),
			"email_count":      len(emailLinks),
			"phone_count":      len(phoneLinks),
			"file_links_count": fileCount,
		},
	}
}

// fileExtension returns the lowercased document/media extension of the final
// path segment, or "" when the segment has none worth bucketing.
func fileExtension(path string) string {
	segment := path
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	dot := strings.LastIndex(segment, ".")
	if dot < 0 || dot == len(segment)-1 {
		return ""
	}
	ext := strings.ToLower(segment[dot+1:])
	if _, ok := documentExtensions[ext]; !ok {
		return ""
	}
	return ext
}

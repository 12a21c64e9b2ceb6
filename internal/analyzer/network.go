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

// resourceSelectors lists where resource URLs live in the document.
var resourceSelectors = []struct {
	Tag  string
	Attr string
}{
	{"script", "src"},
	{"link", "href"},
	{"img", "src"},
	{"iframe", "src"},
	{"source", "src"},
	{"embed", "src"},
	{"object", "data"},
}

// Network inventories every referenced resource: per-domain usage, protocol
// and type tallies, CDN and third-party service detection, the three-way
// domain split, and tracking pixels.
type Network struct{}

func (Network) Name() string { return "network_resources" }

func (Network) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		domains          = map[string][]string{}
		protocols        = map[string]int{}
		resourceTypes    = map[string]int{}
		cdns             []string
		services         = map[string][]string{}
		domainCategories = map[string]int{
			DomainSameOrigin: 0,
			DomainSubdomain:  0,
			DomainThirdParty: 0,
		}
		externalRequests int
	)

	for _, rs := range resourceSelectors {
		doc.Doc.Find(rs.Tag + "[" + rs.Attr + "]").Each(func(_ int, sel *goquery.Selection) {
			raw := sel.AttrOr(rs.Attr, "")
			if raw == "" {
				return
			}
			abs, ok := resolveURL(doc, raw)
			if !ok {
				return
			}
			parsed, err := url.Parse(abs)
			if err != nil || parsed.Host == "" {
				return
			}

			domains[parsed.Host] = append(domains[parsed.Host], rs.Tag)
			resourceTypes[rs.Tag]++
			protocols[parsed.Scheme]++

			category, _ := ClassifyDomain(doc, raw)
			domainCategories[category]++
			if parsed.Host != doc.URL.Host {
				externalRequests++
			}

			for cdn, patterns := range cdnPatterns {
				for _, p := range patterns {
					if strings.Contains(parsed.Host, p) {
						if !lo.Contains(cdns, cdn) {
							cdns = append(cdns, cdn)
						}
						break
					}
				}
			}

			lower := strings.ToLower(abs)
			for service, patterns := range servicePatterns {
				for _, p := range patterns {
					if strings.Contains(lower, p) {
						services[service] = append(services[service], parsed.Host)
						break
					}
				}
			}
		})
	}
	sort.Strings(cdns)

	trackingPixels := doc.Doc.Find(`img[width="1"][height="1"]`).Length()

	thirdPartyTotal := 0
	serviceMetrics := model.Metrics{}
	for _, service := range lo.Keys(servicePatterns) {
		hosts := services[service]
		if hosts == nil {
			hosts = []string{}
		}
		serviceMetrics[service] = hosts
		thirdPartyTotal += len(hosts)
	}

	return model.Metrics{
		"domains":                 domains,
		"protocols":               protocols,
		"resource_types":          resourceTypes,
		"cdn_usage":               cdns,
		"third_party_services":    serviceMetrics,
		"domain_categories":       domainCategories,
		"tracking_pixels":         trackingPixels,
		"total_external_requests": externalRequests,
		"summary": model.Metrics{
			"unique_domains":             len(domains),
			"cdns_detected":              len(cdns),
			"tracking_pixels_count":      trackingPixels,
			"third_party_services_total": thirdPartyTotal,
		},
	}
}

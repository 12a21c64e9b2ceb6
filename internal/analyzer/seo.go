package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// SEO covers title and meta-description optimality, heading hierarchy,
// structured data, social tags, canonical and robots directives, content
// quality, and keyword density.
type SEO struct{}

func (SEO) Name() string { return "seo_signals" }

func (SEO) Analyze(doc *fetcher.Document) model.Metrics {
	return model.Metrics{
		"title":           analyzeTitle(doc),
		"meta_tags":       model.Metrics{"description": analyzeMetaDescription(doc)},
		"headings":        analyzeHeadings(doc),
		"schema_org":      analyzeJSONLD(doc),
		"open_graph":      analyzeOpenGraph(doc),
		"twitter_cards":   analyzeTwitterCards(doc),
		"canonical":       analyzeCanonical(doc),
		"robots":          analyzeRobotsMeta(doc),
		"content_quality": analyzeContentQuality(doc),
		"keyword_density": keywordDensity(doc),
	}
}

func analyzeTitle(doc *fetcher.Document) model.Metrics {
	title := doc.Doc.Find("title").First()
	if title.Length() == 0 {
		return model.Metrics{"exists": false}
	}
	text := title.Text()
	words := strings.Fields(text)

	brandPosition := "unknown"
	if len(words) > 0 && startsUpper(words[len(words)-1]) {
		brandPosition = "end"
	}

	// Lengths are character counts, not byte counts.
	length := utf8.RuneCountInString(text)
	return model.Metrics{
		"exists":         true,
		"text":           text,
		"length":         length,
		"words":          len(words),
		"optimal":        length >= 30 && length <= 60,
		"pipe_separated": strings.Contains(text, "|"),
		"dash_separated": strings.Contains(text, "-"),
		"brand_position": brandPosition,
	}
}

func analyzeMetaDescription(doc *fetcher.Document) model.Metrics {
	meta := doc.Doc.Find(`meta[name="description"]`).First()
	if meta.Length() == 0 {
		return model.Metrics{"exists": false}
	}
	content := meta.AttrOr("content", "")
	lower := strings.ToLower(content)
	hasCTA := false
	for _, word := range []string{"click", "learn", "discover", "find", "get"} {
		if strings.Contains(lower, word) {
			hasCTA = true
			break
		}
	}
	length := utf8.RuneCountInString(content)
	return model.Metrics{
		"exists":  true,
		"content": content,
		"length":  length,
		"optimal": length >= 120 && length <= 160,
		"has_cta": hasCTA,
	}
}

func analyzeHeadings(doc *fetcher.Document) model.Metrics {
	var hierarchy []model.Metrics
	for level := 1; level <= 6; level++ {
		sel := doc.Doc.Find(fmt.Sprintf("h%d", level))
		if sel.Length() == 0 {
			continue
		}
		var (
			texts   []string
			lengths []int
		)
		sel.Each(func(i int, h *goquery.Selection) {
			text := h.Text()
			lengths = append(lengths, utf8.RuneCountInString(text))
			if i < 3 {
				texts = append(texts, truncate(text, 50))
			}
		})
		hierarchy = append(hierarchy, model.Metrics{
			"level":      fmt.Sprintf("h%d", level),
			"count":      sel.Length(),
			"texts":      texts,
			"avg_length": mean(lengths),
		})
	}
	return model.Metrics{
		"hierarchy":     hierarchy,
		"has_single_h1": doc.Doc.Find("h1").Length() == 1,
	}
}

func analyzeJSONLD(doc *fetcher.Document) model.Metrics {
	scripts := doc.Doc.Find(`script[type="application/ld+json"]`)
	var types []any
	scripts.Each(func(_ int, sel *goquery.Selection) {
		var data map[string]any
		// Invalid JSON-LD is skipped, never an error.
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}
		if t, ok := data["@type"]; ok {
			types = append(types, t)
		}
	})
	return model.Metrics{
		"json_ld_count": scripts.Length(),
		"types":         types,
	}
}

func analyzeOpenGraph(doc *fetcher.Document) model.Metrics {
	properties := model.Metrics{}
	count := 0
	doc.Doc.Find("meta[property]").Each(func(_ int, sel *goquery.Selection) {
		prop := sel.AttrOr("property", "")
		if !strings.HasPrefix(prop, "og:") {
			return
		}
		count++
		if len(properties) < 10 {
			properties[prop] = truncate(sel.AttrOr("content", ""), 100)
		}
	})
	return model.Metrics{
		"count":      count,
		"properties": properties,
	}
}

func analyzeTwitterCards(doc *fetcher.Document) model.Metrics {
	count := 0
	doc.Doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		if strings.HasPrefix(sel.AttrOr("name", ""), "twitter:") {
			count++
		}
	})
	var cardType any
	if card := doc.Doc.Find(`meta[name="twitter:card"]`).First(); card.Length() > 0 {
		cardType = card.AttrOr("content", "")
	}
	return model.Metrics{
		"count": count,
		"type":  cardType,
	}
}

func analyzeCanonical(doc *fetcher.Document) model.Metrics {
	canonical := doc.Doc.Find(`link[rel="canonical"]`).First()
	if canonical.Length() == 0 {
		return model.Metrics{"exists": false}
	}
	href := canonical.AttrOr("href", "")
	return model.Metrics{
		"exists": true,
		"url":    href,
		// Exact string match against the analyzed URL, no normalization.
		"self_referencing": href == doc.URL.String(),
	}
}

func analyzeRobotsMeta(doc *fetcher.Document) model.Metrics {
	meta := doc.Doc.Find(`meta[name="robots"]`).First()
	if meta.Length() == 0 {
		return model.Metrics{"content": nil}
	}
	content := meta.AttrOr("content", "")
	return model.Metrics{
		"content":      content,
		"noindex":      strings.Contains(content, "noindex"),
		"nofollow":     strings.Contains(content, "nofollow"),
		"noarchive":    strings.Contains(content, "noarchive"),
		"nosnippet":    strings.Contains(content, "nosnippet"),
		"noimageindex": strings.Contains(content, "noimageindex"),
	}
}

func analyzeContentQuality(doc *fetcher.Document) model.Metrics {
	text := doc.Doc.Text()
	words := strings.Fields(text)

	unique := map[string]struct{}{}
	var wordLengths []int
	for _, w := range words {
		unique[w] = struct{}{}
		wordLengths = append(wordLengths, len(w))
	}

	var sentenceLengths []int
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		sentenceLengths = append(sentenceLengths, len(strings.Fields(s)))
	}

	lexicalDiversity := 0.0
	if len(words) > 0 {
		lexicalDiversity = float64(len(unique)) / float64(len(words))
	}
	contentRatio := 0.0
	if len(doc.HTML) > 0 {
		contentRatio = float64(len(text)) / float64(len(doc.HTML))
	}

	return model.Metrics{
		"word_count":            len(words),
		"unique_words":          len(unique),
		"lexical_diversity":     lexicalDiversity,
		"avg_word_length":       mean(wordLengths),
		"sentence_count":        len(sentenceLengths),
		"avg_sentence_length":   mean(sentenceLengths),
		"paragraph_count":       doc.Doc.Find("p").Length(),
		"list_count":            doc.Doc.Find("ul, ol").Length(),
		"table_count":           doc.Doc.Find("table").Length(),
		"media_count":           doc.Doc.Find("img, video, audio").Length(),
		"content_to_code_ratio": contentRatio,
	}
}

// keywordDensity counts lowercased alphabetic words longer than three
// characters and keeps the ten most frequent.
func keywordDensity(doc *fetcher.Document) map[string]int {
	freq := map[string]int{}
	for _, w := range strings.Fields(doc.Doc.Text()) {
		if len(w) <= 3 || !isAlpha(w) {
			continue
		}
		freq[strings.ToLower(w)]++
	}
	return topN(freq, 10)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

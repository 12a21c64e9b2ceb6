package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// PageStructure summarizes the document skeleton: doctype and language,
// head inventory, body shape, semantic element counts, and whole-page text
// statistics.
type PageStructure struct{}

func (PageStructure) Name() string { return "page_structure" }

func (PageStructure) Analyze(doc *fetcher.Document) model.Metrics {
	return model.Metrics{
		"document_info":     analyzeDocumentInfo(doc),
		"head_analysis":     analyzeHead(doc),
		"body_analysis":     analyzeBody(doc),
		"semantic_elements": countSemanticElements(doc),
		"text_statistics":   analyzeTextStatistics(doc),
	}
}

func analyzeDocumentInfo(doc *fetcher.Document) model.Metrics {
	text := doc.Doc.Text()
	textLength := utf8.RuneCountInString(text)

	var lang any
	if v, ok := doc.Doc.Find("html").First().Attr("lang"); ok {
		lang = v
	}

	markupToText := 0.0
	if textLength > 0 {
		markupToText = float64(len(doc.HTML)) / float64(textLength)
	}

	return model.Metrics{
		"has_doctype":          strings.HasPrefix(strings.ToLower(strings.TrimSpace(doc.HTML)), "<!doctype"),
		"html_lang":            lang,
		"total_html_size":      len(doc.HTML),
		"total_elements":       doc.Doc.Find("*").Length(),
		"total_text_length":    textLength,
		"markup_to_text_ratio": markupToText,
	}
}

func analyzeHead(doc *fetcher.Document) model.Metrics {
	head := doc.Doc.Find("head").First()

	var title any
	titleLength := 0
	if t := head.Find("title").First(); t.Length() > 0 {
		title = t.Text()
		titleLength = utf8.RuneCountInString(t.Text())
	}

	return model.Metrics{
		"title":         title,
		"title_length":  titleLength,
		"meta_tags":     head.Find("meta").Length(),
		"link_tags":     head.Find("link").Length(),
		"script_tags":   head.Find("script").Length(),
		"style_tags":    head.Find("style").Length(),
		"base_tag":      head.Find("base").Length() > 0,
		"viewport_meta": head.Find(`meta[name="viewport"]`).Length() > 0,
	}
}

func analyzeBody(doc *fetcher.Document) model.Metrics {
	body := doc.Doc.Find("body").First()
	return model.Metrics{
		"total_elements":  body.Find("*").Length(),
		"direct_children": body.Children().Length(),
	}
}

func countSemanticElements(doc *fetcher.Document) map[string]int {
	counts := make(map[string]int, len(semanticElements))
	for _, tag := range semanticElements {
		counts[tag] = doc.Doc.Find(tag).Length()
	}
	return counts
}

func analyzeTextStatistics(doc *fetcher.Document) model.Metrics {
	text := doc.Doc.Text()
	words := strings.Fields(text)

	unique := map[string]struct{}{}
	var wordLengths []int
	for _, w := range words {
		wordLengths = append(wordLengths, utf8.RuneCountInString(w))
		if isAlpha(w) {
			unique[strings.ToLower(w)] = struct{}{}
		}
	}

	var sentenceLengths []int
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		sentenceLengths = append(sentenceLengths, len(strings.Fields(s)))
	}

	return model.Metrics{
		"total_words":         len(words),
		"unique_words":        len(unique),
		"total_sentences":     len(sentenceLengths),
		"avg_word_length":     mean(wordLengths),
		"avg_sentence_length": mean(sentenceLengths),
		"paragraphs":          doc.Doc.Find("p").Length(),
		"headings_total":      doc.Doc.Find("h1, h2, h3, h4, h5, h6").Length(),
		"lists":               doc.Doc.Find("ul, ol, dl").Length(),
		"tables":              doc.Doc.Find("table").Length(),
		"forms":               doc.Doc.Find("form").Length(),
	}
}

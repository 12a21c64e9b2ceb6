package analyzer

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Accessibility reports ARIA and semantic-element usage, form labeling,
// alt-text state, keyboard navigation hints, skip links, language
// attributes, and multimedia captioning.
type Accessibility struct{}

func (Accessibility) Name() string { return "accessibility" }

func (Accessibility) Analyze(doc *fetcher.Document) model.Metrics {
	aria := model.Metrics{}
	for _, attr := range ariaAttributes {
		aria[attr] = doc.Doc.Find("[" + attr + "]").Length()
	}

	semantic := model.Metrics{}
	for _, tag := range semanticElements {
		semantic[tag] = doc.Doc.Find(tag).Length()
	}

	// Form labeling: label[for], wrapping label, or aria labeling all count.
	labelFor := map[string]struct{}{}
	doc.Doc.Find("label[for]").Each(func(_ int, sel *goquery.Selection) {
		labelFor[sel.AttrOr("for", "")] = struct{}{}
	})
	labeled, unlabeled := 0, 0
	doc.Doc.Find("input, select, textarea").Each(func(_ int, sel *goquery.Selection) {
		hasLabel := false
		if id, ok := sel.Attr("id"); ok {
			_, hasLabel = labelFor[id]
		}
		if !hasLabel && goquery.NodeName(sel.Parent()) == "label" {
			hasLabel = true
		}
		if !hasLabel {
			_, byLabel := sel.Attr("aria-label")
			_, byRef := sel.Attr("aria-labelledby")
			hasLabel = byLabel || byRef
		}
		if hasLabel {
			labeled++
		} else {
			unlabeled++
		}
	})

	skipLinks := 0
	doc.Doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		if strings.Contains(strings.ToLower(sel.AttrOr("href", "")+sel.Text()), "skip") {
			skipLinks++
		}
	})

	var htmlLang any
	if root := doc.Doc.Find("html").First(); root.Length() > 0 {
		if lang, ok := root.Attr("lang"); ok {
			htmlLang = lang
		}
	}

	images := doc.Doc.Find("img")
	withAlt, emptyAlt, missingAlt, decorative := 0, 0, 0, 0
	images.Each(func(_ int, sel *goquery.Selection) {
		if alt, ok := sel.Attr("alt"); ok {
			withAlt++
			if alt == "" {
				emptyAlt++
			}
		} else {
			missingAlt++
		}
		if sel.AttrOr("role", "") == "presentation" {
			decorative++
		}
	})

	positiveTabindex := 0
	doc.Doc.Find("[tabindex]").Each(func(_ int, sel *goquery.Selection) {
		// Non-numeric tabindex values are skipped, not errors.
		if v, err := strconv.Atoi(strings.TrimSpace(sel.AttrOr("tabindex", ""))); err == nil && v > 0 {
			positiveTabindex++
		}
	})

	videos := doc.Doc.Find("video")
	captioned, described := 0, 0
	videos.Each(func(_ int, sel *goquery.Selection) {
		if sel.Find(`track[kind="captions"]`).Length() > 0 {
			captioned++
		}
		if sel.Find(`track[kind="descriptions"]`).Length() > 0 {
			described++
		}
	})

	return model.Metrics{
		"aria":          aria,
		"semantic_html": semantic,
		"form_labels": model.Metrics{
			"forms_count":           doc.Doc.Find("form").Length(),
			"inputs_with_labels":    labeled,
			"inputs_without_labels": unlabeled,
		},
		"skip_navigation": model.Metrics{
			"count":  skipLinks,
			"exists": skipLinks > 0,
		},
		"language": model.Metrics{
			"html_lang":    htmlLang,
			"lang_changes": doc.Doc.Find("[lang]").Length(),
		},
		"alternative_text": model.Metrics{
			"total_images": images.Length(),
			"with_alt":     withAlt,
			"empty_alt":    emptyAlt,
			"missing_alt":  missingAlt,
			"decorative":   decorative,
		},
		"keyboard_nav": model.Metrics{
			"tabindex_elements":  doc.Doc.Find("[tabindex]").Length(),
			"positive_tabindex":  positiveTabindex,
			"accesskey_elements": doc.Doc.Find("[accesskey]").Length(),
		},
		"multimedia": model.Metrics{
			"videos":                  videos.Length(),
			"videos_with_captions":    captioned,
			"videos_with_transcripts": described,
			"audio_elements":          doc.Doc.Find("audio").Length(),
		},
	}
}

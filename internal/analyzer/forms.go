package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

var validationAttributes = []string{
	"required", "pattern", "min", "max", "minlength", "maxlength",
	"step", "readonly", "disabled",
}

// Forms tallies form methods, input types, validation attributes,
// autocomplete usage, field statistics, and labeling UX.
type Forms struct{}

func (Forms) Name() string { return "form_analysis" }

func (Forms) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		methods      = map[string]int{}
		inputTypes   = map[string]int{}
		validation   = map[string]int{}
		autocomplete = map[string]int{}
	)

	forms := doc.Doc.Find("form")
	forms.Each(func(_ int, form *goquery.Selection) {
		methods[strings.ToLower(form.AttrOr("method", "get"))]++
	})

	doc.Doc.Find("input, select, textarea, button").Each(func(_ int, sel *goquery.Selection) {
		inputTypes[sel.AttrOr("type", "text")]++
		for _, attr := range validationAttributes {
			if _, ok := sel.Attr(attr); ok {
				validation[attr]++
			}
		}
		if ac := sel.AttrOr("autocomplete", ""); ac != "" {
			autocomplete[ac]++
		}
	})

	fields := doc.Doc.Find("input, select, textarea")
	required := fields.FilterFunction(func(_ int, sel *goquery.Selection) bool {
		_, ok := sel.Attr("required")
		return ok
	}).Length()

	placeholders := fields.FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.AttrOr("placeholder", "") != ""
	}).Length()

	return model.Metrics{
		"total_forms":           forms.Length(),
		"form_methods":          methods,
		"input_types":           inputTypes,
		"validation_attributes": validation,
		"autocomplete_usage":    autocomplete,
		"field_statistics": model.Metrics{
			"total_fields":     fields.Length(),
			"required_fields":  required,
			"optional_fields":  fields.Length() - required,
			"password_fields":  doc.Doc.Find(`input[type="password"]`).Length(),
			"email_fields":     doc.Doc.Find(`input[type="email"]`).Length(),
			"file_uploads":     doc.Doc.Find(`input[type="file"]`).Length(),
			"checkboxes":       doc.Doc.Find(`input[type="checkbox"]`).Length(),
			"radio_buttons":    doc.Doc.Find(`input[type="radio"]`).Length(),
			"select_dropdowns": doc.Doc.Find("select").Length(),
			"textareas":        doc.Doc.Find("textarea").Length(),
		},
		"user_experience": model.Metrics{
			"placeholders": placeholders,
			"labels":       doc.Doc.Find("label").Length(),
			"fieldsets":    doc.Doc.Find("fieldset").Length(),
		},
	}
}

package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// MobileResponsive inspects mobile readiness: the viewport declaration,
// responsive image usage, touch-target hints, mobile-only link schemes,
// table handling, and flexible layout signals.
type MobileResponsive struct{}

func (MobileResponsive) Name() string { return "mobile_responsive" }

func (MobileResponsive) Analyze(doc *fetcher.Document) model.Metrics {
	return model.Metrics{
		"viewport":          analyzeViewport(doc),
		"responsive_images": analyzeResponsiveImages(doc),
		"touch_friendly":    analyzeTouchTargets(doc),
		"mobile_specific":   analyzeMobileFeatures(doc),
		"responsive_tables": analyzeResponsiveTables(doc),
		"flexible_layouts":  analyzeFlexibleLayouts(doc),
	}
}

func analyzeViewport(doc *fetcher.Document) model.Metrics {
	meta := doc.Doc.Find(`meta[name="viewport"]`).First()
	if meta.Length() == 0 {
		return model.Metrics{"exists": false}
	}
	content := meta.AttrOr("content", "")
	return model.Metrics{
		"exists":            true,
		"content":           content,
		"width_device":      strings.Contains(content, "width=device-width"),
		"initial_scale":     strings.Contains(content, "initial-scale=1"),
		"user_scalable_off": strings.Contains(content, "user-scalable=no"),
		"minimum_scale":     strings.Contains(content, "minimum-scale"),
		"maximum_scale":     strings.Contains(content, "maximum-scale"),
	}
}

func analyzeResponsiveImages(doc *fetcher.Document) model.Metrics {
	fluidClasses := 0
	maxWidthStyles := 0
	doc.Doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		cls := sel.AttrOr("class", "")
		if strings.Contains(cls, "fluid") || strings.Contains(cls, "responsive") {
			fluidClasses++
		}
		style := strings.ReplaceAll(sel.AttrOr("style", ""), " ", "")
		if strings.Contains(style, "max-width:100%") {
			maxWidthStyles++
		}
	})
	return model.Metrics{
		"picture_elements": doc.Doc.Find("picture").Length(),
		"srcset_usage":     doc.Doc.Find("[srcset]").Length(),
		"sizes_attribute":  doc.Doc.Find("[sizes]").Length(),
		"fluid_classes":    fluidClasses,
		"max_width_styles": maxWidthStyles,
	}
}

func analyzeTouchTargets(doc *fetcher.Document) model.Metrics {
	smallTargets := 0
	doc.Doc.Find("button, a").Each(func(_ int, sel *goquery.Selection) {
		style := sel.AttrOr("style", "")
		if !strings.Contains(style, "padding") {
			return
		}
		// Tiny paddings on tappable elements suggest targets sized for a
		// pointer, not a finger.
		for _, px := range []string{"1px", "2px", "3px"} {
			if strings.Contains(style, px) {
				smallTargets++
				break
			}
		}
	})

	touchScripts := 0
	doc.Doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		if strings.Contains(sel.Text(), "touchstart") {
			touchScripts++
		}
	})

	return model.Metrics{
		"buttons":             doc.Doc.Find("button").Length(),
		"links":               doc.Doc.Find("a").Length(),
		"small_tap_targets":   smallTargets,
		"touch_event_scripts": touchScripts,
	}
}

func analyzeMobileFeatures(doc *fetcher.Document) model.Metrics {
	return model.Metrics{
		"tel_links":        doc.Doc.Find(`a[href^="tel:"]`).Length(),
		"sms_links":        doc.Doc.Find(`a[href^="sms:"]`).Length(),
		"app_links":        doc.Doc.Find(`a[href^="app:"], a[href^="intent:"]`).Length(),
		"apple_touch_icon": doc.Doc.Find(`link[rel="apple-touch-icon"]`).Length() > 0,
		"manifest":         doc.Doc.Find(`link[rel="manifest"]`).Length() > 0,
		"theme_color":      doc.Doc.Find(`meta[name="theme-color"]`).Length() > 0,
	}
}

func analyzeResponsiveTables(doc *fetcher.Document) model.Metrics {
	tables := doc.Doc.Find("table")
	responsiveClass := 0
	overflowWrapped := 0
	tables.Each(func(_ int, sel *goquery.Selection) {
		if strings.Contains(sel.AttrOr("class", ""), "responsive") {
			responsiveClass++
		}
		if strings.Contains(sel.Parent().AttrOr("style", ""), "overflow") {
			overflowWrapped++
		}
	})
	return model.Metrics{
		"total_tables":     tables.Length(),
		"responsive_class": responsiveClass,
		"overflow_wrapped": overflowWrapped,
	}
}

func analyzeFlexibleLayouts(doc *fetcher.Document) model.Metrics {
	var flexbox, grid, relativeUnits int
	doc.Doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style := strings.ReplaceAll(sel.AttrOr("style", ""), " ", "")
		if strings.Contains(style, "display:flex") {
			flexbox++
		}
		if strings.Contains(style, "display:grid") {
			grid++
		}
		for _, unit := range []string{"%", "em", "rem", "vw", "vh"} {
			if strings.Contains(style, unit) {
				relativeUnits++
				break
			}
		}
	})

	bootstrap := false
	tailwind := false
	doc.Doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, tok := range strings.Fields(sel.AttrOr("class", "")) {
			if strings.HasPrefix(tok, "col-") || strings.Contains(tok, "container") || tok == "row" {
				bootstrap = true
			}
			for _, prefix := range []string{"sm:", "md:", "lg:", "xl:"} {
				if strings.HasPrefix(tok, prefix) {
					tailwind = true
				}
			}
		}
		return !(bootstrap && tailwind)
	})

	return model.Metrics{
		"flexbox_usage":      flexbox,
		"grid_usage":         grid,
		"bootstrap_detected": bootstrap,
		"tailwind_detected":  tailwind,
		"relative_units":     relativeUnits,
	}
}

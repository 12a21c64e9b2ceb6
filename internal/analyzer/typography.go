package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Each pattern is applied independently, so background-color values also
// match the bare color pattern; the tallies reflect declarations seen,
// not distinct properties.
var colorPropertyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)color:\s*([^;]+)`),
	regexp.MustCompile(`(?i)background-color:\s*([^;]+)`),
	regexp.MustCompile(`(?i)border-color:\s*([^;]+)`),
	regexp.MustCompile(`(?i)background:\s*([^;]+)`),
}

var (
	fontFamilyRe = regexp.MustCompile(`(?i)font-family:\s*([^;]+)`)
	fontSizeRe   = regexp.MustCompile(`(?i)font-size:\s*([^;]+)`)
	lineHeightRe = regexp.MustCompile(`(?i)line-height:\s*([^;]+)`)
	fontWeightRe = regexp.MustCompile(`(?i)font-weight:\s*([^;]+)`)
)

// Typography extracts the color palette and font usage declared in inline
// styles, plus a coarse light/dark scheme guess.
type Typography struct{}

func (Typography) Name() string { return "colors_typography" }

func (Typography) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		colors      = map[string]int{}
		fonts       = map[string]int{}
		fontWeights = map[string]int{}
		fontSizes   []string
		lineHeights []string
	)

	doc.Doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style := sel.AttrOr("style", "")

		for _, re := range colorPropertyRes {
			for _, match := range re.FindAllStringSubmatch(style, -1) {
				fields := strings.Fields(match[1])
				if len(fields) == 0 {
					continue
				}
				if color := fields[0]; !strings.HasPrefix(color, "url") {
					colors[color]++
				}
			}
		}

		for _, match := range fontFamilyRe.FindAllStringSubmatch(style, -1) {
			for _, family := range strings.Split(match[1], ",") {
				font := strings.Trim(strings.TrimSpace(family), `"'`)
				if font != "" {
					fonts[font]++
				}
			}
		}
		for _, match := range fontSizeRe.FindAllStringSubmatch(style, -1) {
			fontSizes = append(fontSizes, strings.TrimSpace(match[1]))
		}
		for _, match := range lineHeightRe.FindAllStringSubmatch(style, -1) {
			lineHeights = append(lineHeights, strings.TrimSpace(match[1]))
		}
		for _, match := range fontWeightRe.FindAllStringSubmatch(style, -1) {
			fontWeights[strings.TrimSpace(match[1])]++
		}
	})

	return model.Metrics{
		"colors":       colors,
		"fonts":        fonts,
		"font_sizes":   fontSizes,
		"line_heights": lineHeights,
		"font_weights": fontWeights,
		"color_scheme": colorScheme(colors),
	}
}

// colorScheme guesses light/dark mode from the value prefixes of the
// collected colors.
func colorScheme(colors map[string]int) model.Metrics {
	hasDark := false
	hasLight := false
	for color := range colors {
		lower := strings.ToLower(color)
		for _, marker := range []string{"#0", "#1", "#2", "rgb(0"} {
			if strings.Contains(lower, marker) {
				hasDark = true
			}
		}
		for _, marker := range []string{"#f", "#e", "#d", "white"} {
			if strings.Contains(lower, marker) {
				hasLight = true
			}
		}
	}
	return model.Metrics{
		"appears_dark_mode":  hasDark && !hasLight,
		"appears_light_mode": hasLight && !hasDark,
		"mixed_mode":         hasDark && hasLight,
		"unique_colors":      len(colors),
		"most_used_colors":   topN(colors, 10),
	}
}

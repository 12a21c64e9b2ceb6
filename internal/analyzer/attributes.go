package analyzer

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Attributes walks every element once and aggregates per-tag counters,
// text statistics, per-attribute usage with value-length summaries, and the
// nested class and id breakdowns.
type Attributes struct{}

func (Attributes) Name() string { return "attribute_analysis" }

func (Attributes) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		totalElements   int
		maxNestingDepth int
		elementsByTag   = map[string]int{}

		elementsWithText int
		textLengths      []int
		totalWords       int
		totalLines       int

		totalAttributes     int
		attributeUsage      = map[string]int{}
		attributeLengths    = map[string][]int{}
		dataAttributes      = map[string]int{}
		ariaAttributeCounts = map[string]int{}
		customAttributes    = map[string]int{}
	)

	classes := newClassStats()
	ids := newIDStats()

	forEachElement(doc, func(n *html.Node, depth int) {
		totalElements++
		elementsByTag[n.Data]++
		if depth > maxNestingDepth {
			maxNestingDepth = depth
		}

		text := strings.TrimSpace(nodeText(n))
		if text != "" {
			elementsWithText++
			textLengths = append(textLengths, len(text))
			totalWords += len(strings.Fields(text))
			totalLines += len(strings.Split(text, "\n"))
		}

		totalAttributes += len(n.Attr)
		for _, a := range n.Attr {
			attributeUsage[a.Key]++
			attributeLengths[a.Key] = append(attributeLengths[a.Key], len(a.Val))

			// Mutually exclusive buckets: data-*, aria-*, custom.
			switch {
			case strings.HasPrefix(a.Key, "data-"):
				dataAttributes[a.Key]++
			case strings.HasPrefix(a.Key, "aria-"):
				ariaAttributeCounts[a.Key]++
			default:
				if _, known := wellKnownAttributes[a.Key]; !known {
					customAttributes[a.Key]++
				}
			}
		}

		classes.observe(classTokens(n))
		if id, ok := attrVal(n, "id"); ok && id != "" {
			ids.observe(id)
		} else {
			ids.without++
		}
	})

	attributeStatistics := make(model.Metrics, len(attributeLengths))
	for name, lengths := range attributeLengths {
		attributeStatistics[name] = lengthStats(lengths)
	}

	return model.Metrics{
		"total_elements":    totalElements,
		"elements_by_tag":   elementsByTag,
		"unique_tags_count": len(elementsByTag),
		"max_nesting_depth": maxNestingDepth,
		"text_content": model.Metrics{
			"elements_with_text": elementsWithText,
			"total_text_length":  lo.Sum(textLengths),
			"total_words":        totalWords,
			"total_lines":        totalLines,
			"avg_text_length":    mean(textLengths),
		},
		"total_attributes":        totalAttributes,
		"attribute_usage_count":   attributeUsage,
		"unique_attributes_count": len(attributeUsage),
		"attribute_statistics":    attributeStatistics,
		"data_attributes":         dataAttributes,
		"aria_attributes":         ariaAttributeCounts,
		"custom_attributes":       customAttributes,
		"classes":                 classes.metrics(),
		"ids":                     ids.metrics(),
	}
}

// classStats accumulates the class-token breakdown.
type classStats struct {
	with         int
	without      int
	multiple     int
	usage        map[string]int
	combinations map[string]int
	bemBlocks    int
	bemElements  int
	bemModifiers int
	atomic       int
}

func newClassStats() *classStats {
	return &classStats{
		usage:        map[string]int{},
		combinations: map[string]int{},
	}
}

func (s *classStats) observe(tokens []string) {
	if len(tokens) == 0 {
		s.without++
		return
	}
	s.with++
	if len(tokens) > 1 {
		s.multiple++
		sorted := make([]string, len(tokens))
		copy(sorted, tokens)
		sort.Strings(sorted)
		s.combinations[strings.Join(sorted, " ")]++
	}
	for _, cls := range tokens {
		s.usage[cls]++

		// BEM: element, then modifier, then dash-only block.
		switch {
		case strings.Contains(cls, "__"):
			s.bemElements++
		case strings.Contains(cls, "--"):
			s.bemModifiers++
		case strings.Contains(cls, "-"):
			s.bemBlocks++
		}

		if _, util := atomicUtilities[cls]; util || len(cls) <= 5 {
			s.atomic++
		}
	}
}

func (s *classStats) metrics() model.Metrics {
	m := model.Metrics{
		"elements_with_classes":    s.with,
		"elements_without_classes": s.without,
		"multiple_class_elements":  s.multiple,
		"class_usage":              s.usage,
		"class_combinations":       s.combinations,
		"unique_classes_count":     len(s.usage),
		"bem_usage": model.Metrics{
			"blocks":    s.bemBlocks,
			"elements":  s.bemElements,
			"modifiers": s.bemModifiers,
		},
		"atomic_class_count": s.atomic,
	}
	if len(s.usage) > 0 {
		counts := lo.Values(s.usage)
		m["class_statistics"] = model.Metrics{
			"total_unique_classes":   len(s.usage),
			"most_used_class_count":  lo.Max(counts),
			"least_used_class_count": lo.Min(counts),
			"average_usage":          mean(counts),
			"median_usage":           median(counts),
		}
	}
	return m
}

// idStats tracks id uniqueness. The unique set grows monotonically; a repeat
// counts its extra occurrences in duplicates, so ids [a, a, b] give a unique
// set of size 2 and duplicates {a: 1}.
type idStats struct {
	with       int
	without    int
	unique     map[string]struct{}
	duplicates map[string]int
	lengths    []int
}

func newIDStats() *idStats {
	return &idStats{
		unique:     map[string]struct{}{},
		duplicates: map[string]int{},
	}
}

func (s *idStats) observe(id string) {
	s.with++
	s.lengths = append(s.lengths, len(id))
	if _, seen := s.unique[id]; seen {
		s.duplicates[id]++
	} else {
		s.unique[id] = struct{}{}
	}
}

func (s *idStats) metrics() model.Metrics {
	uniqueIDs := lo.Keys(s.unique)
	sort.Strings(uniqueIDs)

	m := model.Metrics{
		"elements_with_ids":    s.with,
		"elements_without_ids": s.without,
		"unique_ids":           uniqueIDs,
		"duplicate_ids":        s.duplicates,
	}
	if len(s.lengths) > 0 {
		m["id_statistics"] = model.Metrics{
			"total_ids":       s.with,
			"unique_count":    len(s.unique),
			"duplicate_count": len(s.duplicates),
			"min_length":      lo.Min(s.lengths),
			"max_length":      lo.Max(s.lengths),
			"avg_length":      mean(s.lengths),
			"median_length":   median(s.lengths),
		}
	}
	return m
}

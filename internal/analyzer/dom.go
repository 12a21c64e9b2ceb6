package analyzer

import (
	"golang.org/x/net/html"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// DOMComplexity measures the shape of the element tree: totals, depth,
// branching, and a derived complexity score.
type DOMComplexity struct{}

func (DOMComplexity) Name() string { return "dom_complexity" }

func (DOMComplexity) Analyze(doc *fetcher.Document) model.Metrics {
	var (
		total    int
		maxDepth int
		leaves   int
		branches int
		children []int
	)

	forEachElement(doc, func(n *html.Node, depth int) {
		total++
		if depth > maxDepth {
			maxDepth = depth
		}
		c := childElementCount(n)
		children = append(children, c)
		if c == 0 {
			leaves++
		} else {
			branches++
		}
	})

	// A flat document still scores total*1, never zero.
	depthFactor := maxDepth
	if depthFactor < 1 {
		depthFactor = 1
	}

	return model.Metrics{
		"total_elements":            total,
		"max_depth":                 maxDepth,
		"average_children_per_node": mean(children),
		"leaf_nodes":                leaves,
		"branch_nodes":              branches,
		"complexity_score":          total * depthFactor,
	}
}

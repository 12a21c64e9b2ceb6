package analyzer

import (
	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// Analyzer is one metric pass over a fetched page. Implementations are
// stateless, never mutate the Document, and return zero-valued metrics
// (not errors) for empty documents.
type Analyzer interface {
	// Name is the category key the result is stored under.
	Name() string
	Analyze(doc *fetcher.Document) model.Metrics
}

// Default returns the full analyzer set in report order.
func Default() []Analyzer {
	return []Analyzer{
		DOMComplexity{},
		Attributes{},
		Links{},
		Images{},
		Scripts{},
		CSS{},
		Performance{},
		SEO{},
		Accessibility{},
		Security{},
		Network{},
		Forms{},
		PageWeight{},
		MobileResponsive{},
		Typography{},
		PageStructure{},
	}
}

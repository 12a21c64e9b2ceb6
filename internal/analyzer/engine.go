package analyzer

import (
	"errors"
	"reflect"
	"time"

	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/model"
)

// timestampLayout matches the report timestamp format everywhere.
const timestampLayout = "2006-01-02 15:04:05"

// Engine runs a set of analyzers over one Document and merges their results
// into a single report with meta statistics.
type Engine struct {
	analyzers []Analyzer
}

// NewEngine builds an Engine; with no arguments it runs the default set.
func NewEngine(analyzers ...Analyzer) *Engine {
	if len(analyzers) == 0 {
		analyzers = Default()
	}
	return &Engine{analyzers: analyzers}
}

// AnalyzerCount reports how many analyzers the engine runs per page.
func (e *Engine) AnalyzerCount() int { return len(e.analyzers) }

// Analyze produces the full report for one fetched page.
func (e *Engine) Analyze(doc *fetcher.Document) model.Report {
	return e.build(doc, nil)
}

// AnalyzeAgents merges per-agent fetch outcomes into a report: the first
// successful fetch feeds the analyzers, and a user_agent_analysis category
// records how every identity fared. With no success at all the result is the
// terminal error report.
func (e *Engine) AnalyzeAgents(rawURL string, results []fetcher.AgentResult) model.Report {
	var main *fetcher.Document
	variations := model.Metrics{}
	succeeded, failed := 0, 0

	for _, r := range results {
		if r.Err != nil || r.Doc == nil {
			failed++
			continue
		}
		succeeded++
		if main == nil {
			main = r.Doc
		}
		variations[r.Agent] = model.Metrics{
			"status_code":    r.Doc.StatusCode,
			"content_length": r.Doc.ContentLength,
			"response_time":  r.Doc.Elapsed.Seconds(),
		}
	}

	if main == nil {
		return model.ErrorReport(rawURL, errors.New("all user agents failed to fetch the page"))
	}

	return e.build(main, model.Metrics{
		"user_agent_analysis": model.Metrics{
			"total_tested":        len(results),
			"successful_fetches":  succeeded,
			"failed_fetches":      failed,
			"response_variations": variations,
		},
	})
}

func (e *Engine) build(doc *fetcher.Document, extra model.Metrics) model.Report {
	start := time.Now()

	report := model.Report{
		"url": doc.URL.String(),
		"fetch_info": model.Metrics{
			"status_code":    doc.StatusCode,
			"content_length": doc.ContentLength,
			"response_time":  doc.Elapsed.Seconds(),
		},
	}
	for _, a := range e.analyzers {
		report[a.Name()] = a.Analyze(doc)
	}
	for name, metrics := range extra {
		report[name] = metrics
	}

	// url and fetch_info are context, not analysis categories.
	categories := len(report) - 2

	// The data-point total is the structural count over everything merged so
	// far, taken before the meta block is inserted.
	report["meta_statistics"] = model.Metrics{
		"total_data_points":   CountDataPoints(report),
		"analysis_categories": categories,
		"processing_time":     time.Since(start).Seconds(),
		"timestamp":           time.Now().UTC().Format(timestampLayout),
	}
	return report
}

// CountDataPoints recursively counts data points in a result: a map adds its
// key count, a slice its length, both then recurse; any scalar counts as 1.
func CountDataPoints(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		count := rv.Len()
		iter := rv.MapRange()
		for iter.Next() {
			count += CountDataPoints(iter.Value().Interface())
		}
		return count
	case reflect.Slice, reflect.Array:
		count := rv.Len()
		for i := 0; i < rv.Len(); i++ {
			count += CountDataPoints(rv.Index(i).Interface())
		}
		return count
	default:
		return 1
	}
}

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fuzumoe/domsight-api/internal/model"
)

// Format selects the report output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
)

// Write renders the report to w in the requested format.
func Write(w io.Writer, r model.Report, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatSummary:
		return WriteSummary(w, r)
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatXLSX:
		return WriteXLSX(w, r)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, r model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// WriteCSV renders the flattened report as metric,value rows.
func WriteCSV(w io.Writer, r model.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"metric", "value"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range Flatten(r) {
		if err := cw.Write([]string{row.Path, formatValue(row.Value)}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary renders a short human-readable digest: the analyzed URL,
// fetch info, and per-category headline numbers.
func WriteSummary(w io.Writer, r model.Report) error {
	if errMsg, failed := r["error"].(string); failed {
		_, err := fmt.Fprintf(w, "analysis failed for %v: %s\n", r["url"], errMsg)
		return err
	}

	fmt.Fprintf(w, "URL: %v\n", r["url"])
	if fi, ok := r["fetch_info"].(map[string]any); ok {
		fmt.Fprintf(w, "Status: %v  Size: %v bytes  Time: %ss\n",
			fi["status_code"], fi["content_length"], formatValue(fi["response_time"]))
	}

	categories := make([]string, 0, len(r))
	for name := range r {
		switch name {
		case "url", "fetch_info", "meta_statistics", "error":
			continue
		}
		categories = append(categories, name)
	}
	sort.Strings(categories)

	for _, name := range categories {
		metrics, ok := r[name].(map[string]any)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\n[%s]\n", name)
		keys := make([]string, 0, len(metrics))
		for k := range metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch v := metrics[k].(type) {
			case int, float64, bool, string:
				fmt.Fprintf(w, "  %s: %s\n", k, formatValue(v))
			}
		}
	}

	if meta, ok := r["meta_statistics"].(map[string]any); ok {
		fmt.Fprintf(w, "\nTotal data points: %v across %v categories in %ss\n",
			meta["total_data_points"], meta["analysis_categories"], formatValue(meta["processing_time"]))
	}
	return nil
}

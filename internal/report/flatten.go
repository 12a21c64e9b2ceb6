package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/fuzumoe/domsight-api/internal/model"
)

// Row is one flattened metric: a dotted path and its scalar value.
type Row struct {
	Path  string
	Value any
}

// Flatten turns a nested report into sorted path/value rows. Map keys join
// with dots, slice indexes with brackets, so every scalar gets one row.
func Flatten(r model.Report) []Row {
	var rows []Row
	var walk func(prefix string, v any)
	walk = func(prefix string, v any) {
		switch val := v.(type) {
		case map[string]any:
			for k, child := range val {
				p := k
				if prefix != "" {
					p = prefix + "." + k
				}
				walk(p, child)
			}
		case map[string]int:
			for k, child := range val {
				p := k
				if prefix != "" {
					p = prefix + "." + k
				}
				rows = append(rows, Row{Path: p, Value: child})
			}
		case map[string][]string:
			for k, child := range val {
				p := k
				if prefix != "" {
					p = prefix + "." + k
				}
				walk(p, child)
			}
		case []any:
			for i, child := range val {
				walk(fmt.Sprintf("%s[%d]", prefix, i), child)
			}
		case []string:
			for i, child := range val {
				rows = append(rows, Row{Path: fmt.Sprintf("%s[%d]", prefix, i), Value: child})
			}
		case []map[string]any:
			for i, child := range val {
				walk(fmt.Sprintf("%s[%d]", prefix, i), child)
			}
		default:
			rows = append(rows, Row{Path: prefix, Value: v})
		}
	}
	walk("", r)

	sort.Slice(rows, func(i, j int) bool { return rows[i].Path < rows[j].Path })
	return rows
}

// formatValue renders a scalar for CSV and summary output.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%.4f", val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}

package model

// Metrics is one analyzer's nested result. Values are numbers, strings,
// booleans, slices, or nested maps so every result serializes as-is.
type Metrics = map[string]any

// Report maps analysis category names to their metrics, plus the
// url, fetch_info and meta_statistics entries added by the engine.
type Report = map[string]any

// ErrorReport is the terminal result for a failed fetch: the error text
// and the requested URL, nothing else.
func ErrorReport(rawURL string, err error) Report {
	return Report{
		"error": err.Error(),
		"url":   rawURL,
	}
}

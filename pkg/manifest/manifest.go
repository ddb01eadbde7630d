package manifest

// Source statuses.
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusFailed   = "failed"
)

// SummaryManifest is the run summary written next to the dataset.
// It lets a reader check a run without opening the CSV.
type SummaryManifest struct {
	GeneratedAt string          `json:"generated_at"`
	RunID       int64           `json:"run_id,omitempty"`
	Totals      Totals          `json:"totals"`
	TopLicenses []string        `json:"top_licenses"`
	Results     []SourceSummary `json:"results"`
}

// Totals counts sources by outcome. Unresolved sources were found but have no registry entry.
type Totals struct {
	Sources    int `json:"sources"`
	Found      int `json:"found"`
	NotFound   int `json:"not_found"`
	Failed     int `json:"failed"`
	Unresolved int `json:"unresolved"`
	Cached     int `json:"cached"`
}

// SourceSummary represents summary information for a single source.
type SourceSummary struct {
	Source       string `json:"source"`
	Status       string `json:"status"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	License      string `json:"license,omitempty"`
	Language     string `json:"language,omitempty"`
	Unresolved   bool   `json:"unresolved,omitempty"`
}

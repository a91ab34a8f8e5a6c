package models

import "time"

// Severity classifies a finding by how likely its location is to hold a live
// credential. Paths that look like test or example material are medium,
// everything else is critical.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMedium   Severity = "medium"
)

// SecretFinding represents a single secret reported by the scanning tool.
// Tags are for the JSON output files. The Severity field is assigned once by
// the classifier; no other field changes after parsing.
type SecretFinding struct {
	Repository   RepositoryRef  `json:"repository"`
	FilePath     string         `json:"file_path"`
	DetectorName string         `json:"detector_name"`
	DecoderName  string         `json:"decoder_name,omitempty"`
	Verified     bool           `json:"verified"`
	Raw          string         `json:"raw,omitempty"`
	Redacted     string         `json:"redacted,omitempty"`
	Commit       string         `json:"commit,omitempty"`
	CommitEmail  string         `json:"commit_email,omitempty"`
	Line         int            `json:"line,omitempty"`
	Timestamp    time.Time      `json:"timestamp,omitempty"`
	ExtraData    map[string]any `json:"extra_data,omitempty"`
	Severity     Severity       `json:"severity"`
}

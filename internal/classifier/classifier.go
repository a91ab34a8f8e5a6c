package classifier

import (
	"strings"

	"github.com/redteamtools/trufflehub/internal/models"
)

// Classifier maps a finding's location to a severity. It is pure and
// deterministic: the pattern list is lowered once at construction and never
// mutated afterwards.
type Classifier struct {
	mediumPatterns []string
}

// New creates a Classifier. An empty pattern list falls back to
// DefaultMediumPatterns.
func New(mediumPatterns []string) *Classifier {
	if len(mediumPatterns) == 0 {
		mediumPatterns = DefaultMediumPatterns
	}

	lowered := make([]string, len(mediumPatterns))
	for i, p := range mediumPatterns {
		lowered[i] = strings.ToLower(p)
	}
	return &Classifier{mediumPatterns: lowered}
}

// Classify returns the severity for a finding location. If any medium-signal
// pattern matches the file path or the repository name (case-insensitive),
// the finding is medium; otherwise it is critical. There is no precedence
// among medium patterns.
func (c *Classifier) Classify(filePath, repository string) models.Severity {
	combined := strings.ToLower(filePath + " " + repository)
	for _, pattern := range c.mediumPatterns {
		if strings.Contains(combined, pattern) {
			return models.SeverityMedium
		}
	}
	return models.SeverityCritical
}

// ClassifyFinding assigns the severity field of a finding based on its file
// path and repository. Findings with no inspectable location default to
// critical.
func (c *Classifier) ClassifyFinding(finding *models.SecretFinding) {
	finding.Severity = c.Classify(finding.FilePath, finding.Repository.FullName())
}

package models

// ScanStatus is the per-repository outcome of one scanner invocation.
type ScanStatus string

const (
	// StatusClean means the scanner ran and reported nothing.
	StatusClean ScanStatus = "clean"
	// StatusFindings means at least one finding survived filtering.
	StatusFindings ScanStatus = "findings"
	// StatusFailed means the scanner process failed or timed out.
	StatusFailed ScanStatus = "failed"
)

// ScanResult holds the classified findings of a single repository. It is
// created once per repository and folded into the run report afterwards.
type ScanResult struct {
	Repo     RepositoryRef
	Findings []SecretFinding
	Status   ScanStatus
	Err      error
}

// CriticalCount returns the number of critical findings.
func (r ScanResult) CriticalCount() int {
	return r.countBySeverity(SeverityCritical)
}

// MediumCount returns the number of medium findings.
func (r ScanResult) MediumCount() int {
	return r.countBySeverity(SeverityMedium)
}

func (r ScanResult) countBySeverity(sev Severity) int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			count++
		}
	}
	return count
}

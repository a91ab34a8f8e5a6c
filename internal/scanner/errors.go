package scanner

import "fmt"

// ScanError indicates the external scanner failed for one repository. It is
// isolated to that repository; the run continues with the next one.
type ScanError struct {
	Repository string
	ExitCode   int
	Stderr     string
	Err        error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scan of '%s' failed: %v", e.Repository, e.Err)
	}
	return fmt.Sprintf("scan of '%s' failed with exit code %d", e.Repository, e.ExitCode)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

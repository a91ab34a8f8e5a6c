package reporter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redteamtools/trufflehub/internal/models"
	"github.com/redteamtools/trufflehub/internal/reporter"
)

func cleanResult() models.ScanResult {
	return models.ScanResult{
		Repo:   models.RepositoryRef{Owner: "acme", Name: "widget"},
		Status: models.StatusClean,
	}
}

func TestRepoLineStatuses(t *testing.T) {
	testCases := []struct {
		name     string
		result   models.ScanResult
		contains []string
	}{
		{
			name:     "clean",
			result:   cleanResult(),
			contains: []string{"[clean]", "acme/widget", "[1/3]"},
		},
		{
			name: "critical findings",
			result: models.ScanResult{
				Repo:     models.RepositoryRef{Owner: "acme", Name: "widget"},
				Findings: []models.SecretFinding{{Severity: models.SeverityCritical}},
				Status:   models.StatusFindings,
			},
			contains: []string{"[critical]", "acme/widget", "1", "findings"},
		},
		{
			name: "any medium finding tags the line medium",
			result: models.ScanResult{
				Repo: models.RepositoryRef{Owner: "acme", Name: "widget"},
				Findings: []models.SecretFinding{
					{Severity: models.SeverityCritical},
					{Severity: models.SeverityMedium},
				},
				Status: models.StatusFindings,
			},
			contains: []string{"[medium]", "2"},
		},
		{
			name: "failed",
			result: models.ScanResult{
				Repo:   models.RepositoryRef{Owner: "acme", Name: "widget"},
				Status: models.StatusFailed,
			},
			contains: []string{"[failed]", "acme/widget"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			console := reporter.NewConsoleReporter(&buf, false)
			console.RepoLine(1, 3, tc.result)
			for _, want := range tc.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRepoLineZeroPadsProgress(t *testing.T) {
	var buf bytes.Buffer
	console := reporter.NewConsoleReporter(&buf, false)
	console.RepoLine(7, 120, cleanResult())
	assert.Contains(t, buf.String(), "[007/120]")
}

func TestSilentModeSuppressesCleanLines(t *testing.T) {
	var buf bytes.Buffer
	console := reporter.NewConsoleReporter(&buf, true)

	console.PrintBanner()
	console.RepoLine(1, 2, cleanResult())
	assert.Empty(t, buf.String(), "silent mode must emit nothing for clean repositories")

	console.RepoLine(2, 2, models.ScanResult{
		Repo:     models.RepositoryRef{Owner: "acme", Name: "leaky"},
		Findings: []models.SecretFinding{{Severity: models.SeverityCritical}},
		Status:   models.StatusFindings,
	})
	assert.Contains(t, buf.String(), "acme/leaky")
}

func TestSilentModeStillPrintsFailures(t *testing.T) {
	var buf bytes.Buffer
	console := reporter.NewConsoleReporter(&buf, true)
	console.RepoLine(1, 1, models.ScanResult{
		Repo:   models.RepositoryRef{Owner: "acme", Name: "widget"},
		Status: models.StatusFailed,
	})
	assert.Contains(t, buf.String(), "[failed]")
}

func TestSummaryOutput(t *testing.T) {
	var buf bytes.Buffer
	console := reporter.NewConsoleReporter(&buf, false)

	console.Summary(models.RunSummary{
		TotalRepositories: 5,
		CleanRepositories: 3,
		FailedScans:       1,
		CriticalFindings:  2,
		MediumFindings:    1,
	})

	out := buf.String()
	assert.Contains(t, out, "Scan finished")
	assert.Contains(t, out, "elapsed time")
	assert.Contains(t, out, "1 failed")
}

func TestSummaryInterrupted(t *testing.T) {
	var buf bytes.Buffer
	console := reporter.NewConsoleReporter(&buf, false)
	console.Summary(models.RunSummary{Interrupted: true})
	assert.Contains(t, buf.String(), "Scan interrupted")
}

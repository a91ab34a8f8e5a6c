package reporter_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redteamtools/trufflehub/internal/models"
	"github.com/redteamtools/trufflehub/internal/reporter"
)

func finding(path string, severity models.Severity) models.SecretFinding {
	return models.SecretFinding{
		Repository:   models.RepositoryRef{Owner: "acme", Name: "widget", CloneURL: "https://github.com/acme/widget.git"},
		FilePath:     path,
		DetectorName: "AWS",
		Severity:     severity,
	}
}

func readFindingsFile(t *testing.T, path string) []models.SecretFinding {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var findings []models.SecretFinding
	require.NoError(t, json.Unmarshal(data, &findings), "output file must be a valid JSON array")
	return findings
}

func TestWriteSeverityFilesPartitionsBySeverity(t *testing.T) {
	outputDir := t.TempDir()
	writer := reporter.NewFileWriter(outputDir, zerolog.Nop())

	findings := []models.SecretFinding{
		finding("src/config.py", models.SeverityCritical),
		finding("tests/creds.json", models.SeverityMedium),
		finding("deploy/key.pem", models.SeverityCritical),
	}

	written, err := writer.WriteSeverityFiles(findings)
	require.NoError(t, err)
	require.Len(t, written, 2, "exactly one file per severity present")

	critical := readFindingsFile(t, filepath.Join(outputDir, "critical.json"))
	medium := readFindingsFile(t, filepath.Join(outputDir, "medium.json"))

	require.Len(t, critical, 2)
	require.Len(t, medium, 1)
	assert.Equal(t, len(findings), len(critical)+len(medium))

	for _, f := range critical {
		assert.Equal(t, models.SeverityCritical, f.Severity)
	}
	for _, f := range medium {
		assert.Equal(t, models.SeverityMedium, f.Severity)
	}
	assert.Equal(t, "acme", critical[0].Repository.Owner, "repository metadata is carried into the files")
}

func TestWriteSeverityFilesSkipsEmptySeverity(t *testing.T) {
	outputDir := t.TempDir()
	writer := reporter.NewFileWriter(outputDir, zerolog.Nop())

	written, err := writer.WriteSeverityFiles([]models.SecretFinding{
		finding("src/config.py", models.SeverityCritical),
	})
	require.NoError(t, err)
	require.Len(t, written, 1)

	_, err = os.Stat(filepath.Join(outputDir, "medium.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteSeverityFilesCreatesOutputDir(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "nested", "results")
	writer := reporter.NewFileWriter(outputDir, zerolog.Nop())

	_, err := writer.WriteSeverityFiles([]models.SecretFinding{
		finding("src/config.py", models.SeverityCritical),
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outputDir, "critical.json"))
}

func TestWriteSeverityFilesNoOutputDirConfigured(t *testing.T) {
	writer := reporter.NewFileWriter("", zerolog.Nop())
	written, err := writer.WriteSeverityFiles([]models.SecretFinding{
		finding("src/config.py", models.SeverityCritical),
	})
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestWriteSeverityFilesOverwritesPreviousRun(t *testing.T) {
	outputDir := t.TempDir()
	writer := reporter.NewFileWriter(outputDir, zerolog.Nop())

	_, err := writer.WriteSeverityFiles([]models.SecretFinding{
		finding("a.py", models.SeverityCritical),
		finding("b.py", models.SeverityCritical),
	})
	require.NoError(t, err)

	_, err = writer.WriteSeverityFiles([]models.SecretFinding{
		finding("c.py", models.SeverityCritical),
	})
	require.NoError(t, err)

	critical := readFindingsFile(t, filepath.Join(outputDir, "critical.json"))
	require.Len(t, critical, 1)
	assert.Equal(t, "c.py", critical[0].FilePath)
}

package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/models"
)

// FileWriter persists the run's findings as one JSON array file per severity
// in the configured output directory. The whole result set is buffered by the
// orchestrator and flushed here once at end of run; there are no incremental
// writes.
type FileWriter struct {
	outputDir string
	logger    zerolog.Logger
}

// NewFileWriter creates a FileWriter for outputDir.
func NewFileWriter(outputDir string, logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		outputDir: outputDir,
		logger:    logger.With().Str("component", "FileWriter").Logger(),
	}
}

// WriteSeverityFiles partitions findings by severity and writes
// critical.json and medium.json. A severity with no findings produces no
// file. Existing files are overwritten. Returns the paths written.
func (w *FileWriter) WriteSeverityFiles(findings []models.SecretFinding) ([]string, error) {
	if w.outputDir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", w.outputDir, err)
	}

	partitions := map[models.Severity][]models.SecretFinding{}
	for _, finding := range findings {
		partitions[finding.Severity] = append(partitions[finding.Severity], finding)
	}

	var written []string
	for _, severity := range []models.Severity{models.SeverityCritical, models.SeverityMedium} {
		part := partitions[severity]
		if len(part) == 0 {
			continue
		}

		data, err := json.MarshalIndent(part, "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to marshal %s findings: %w", severity, err)
		}

		path := filepath.Join(w.outputDir, string(severity)+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write '%s': %w", path, err)
		}

		w.logger.Info().Str("path", path).Int("count", len(part)).Msg("Wrote findings file")
		written = append(written, path)
	}

	return written, nil
}

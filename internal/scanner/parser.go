package scanner

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/models"
)

// truffleHogFinding defines the structure for a single finding from the
// TruffleHog v3 JSONL output.
type truffleHogFinding struct {
	SourceMetadata struct {
		Data struct {
			Git *struct {
				Commit     string    `json:"commit"`
				File       string    `json:"file"`
				Email      string    `json:"email"`
				Repository string    `json:"repository"`
				Timestamp  time.Time `json:"timestamp"`
				Line       int       `json:"line"`
			} `json:"Git"`
			Github *struct {
				Commit     string    `json:"commit"`
				File       string    `json:"file"`
				Email      string    `json:"email"`
				Repository string    `json:"repository"`
				Timestamp  time.Time `json:"timestamp"`
				Line       int       `json:"line"`
			} `json:"Github"`
		} `json:"Data"`
	} `json:"SourceMetadata"`
	DetectorName string         `json:"DetectorName"`
	DecoderName  string         `json:"DecoderName"`
	Verified     bool           `json:"Verified"`
	Raw          string         `json:"Raw"`
	Redacted     string         `json:"Redacted"`
	ExtraData    map[string]any `json:"ExtraData"`
}

// parseFindings reads TruffleHog JSONL output line by line. Malformed lines
// are logged as warnings and skipped; they never abort the repository's scan.
// When onlyVerified is set, unverified detections are dropped here, before
// classification.
func parseFindings(r io.Reader, repo models.RepositoryRef, onlyVerified bool, logger zerolog.Logger) []models.SecretFinding {
	var findings []models.SecretFinding

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var thFinding truffleHogFinding
		if err := json.Unmarshal(line, &thFinding); err != nil {
			logger.Warn().Err(err).Int("output_line", lineNumber).Str("line_content", string(line)).
				Msg("Failed to unmarshal scanner output line, skipping")
			continue
		}

		if onlyVerified && !thFinding.Verified {
			continue
		}

		finding := models.SecretFinding{
			Repository:   repo,
			DetectorName: thFinding.DetectorName,
			DecoderName:  thFinding.DecoderName,
			Verified:     thFinding.Verified,
			Raw:          thFinding.Raw,
			Redacted:     thFinding.Redacted,
			ExtraData:    thFinding.ExtraData,
		}

		if git := thFinding.SourceMetadata.Data.Git; git != nil {
			finding.FilePath = git.File
			finding.Commit = git.Commit
			finding.CommitEmail = git.Email
			finding.Line = git.Line
			finding.Timestamp = git.Timestamp
		} else if gh := thFinding.SourceMetadata.Data.Github; gh != nil {
			finding.FilePath = gh.File
			finding.Commit = gh.Commit
			finding.CommitEmail = gh.Email
			finding.Line = gh.Line
			finding.Timestamp = gh.Timestamp
		}

		findings = append(findings, finding)
	}

	if err := scanner.Err(); err != nil {
		logger.Warn().Err(err).Str("repository", repo.FullName()).Msg("Error reading scanner output, returning findings parsed so far")
	}

	return findings
}

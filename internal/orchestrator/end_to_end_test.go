package orchestrator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redteamtools/trufflehub/internal/classifier"
	"github.com/redteamtools/trufflehub/internal/config"
	"github.com/redteamtools/trufflehub/internal/github"
	"github.com/redteamtools/trufflehub/internal/models"
	"github.com/redteamtools/trufflehub/internal/orchestrator"
	"github.com/redteamtools/trufflehub/internal/reporter"
	"github.com/redteamtools/trufflehub/internal/scanner"
)

// The fake tool reports one verified finding in production code and one
// unverified finding in test fixtures, mirroring real TruffleHog JSONL.
const fakeToolScript = `#!/bin/sh
echo '{"SourceMetadata":{"Data":{"Git":{"file":"src/config.py","line":8}}},"DetectorName":"AWS","Verified":true,"Raw":"AKIA"}'
echo '{"SourceMetadata":{"Data":{"Git":{"file":"tests/fixtures/creds.json","line":1}}},"DetectorName":"Generic","Verified":false,"Raw":"hunter2"}'
`

func TestEndToEndSingleRepositoryValidResultsOnly(t *testing.T) {
	toolPath := filepath.Join(t.TempDir(), "trufflehog")
	require.NoError(t, os.WriteFile(toolPath, []byte(fakeToolScript), 0o755))

	scannerCfg := config.NewDefaultScannerConfig()
	scannerCfg.TruffleHogPath = toolPath
	scannerCfg.OnlyVerified = true // --results valid

	outputDir := t.TempDir()
	var out bytes.Buffer
	orch := orchestrator.NewOrchestrator(
		github.NewEnumerator(nil, zerolog.Nop()), // single-repo targets never touch the API client
		scanner.NewTruffleHogInvoker(&scannerCfg, zerolog.Nop()),
		classifier.New(nil),
		reporter.NewConsoleReporter(&out, false),
		reporter.NewFileWriter(outputDir, zerolog.Nop()),
		nil,
		zerolog.Nop(),
	)

	target := models.Target{Kind: models.TargetRepository, Value: "https://github.com/acme/widget.git"}
	summary, err := orch.Run(context.Background(), target, models.EnumerationOptions{})
	require.NoError(t, err)

	// The unverified finding is dropped before classification; the verified
	// one lacks any medium-signal pattern and is critical.
	assert.Equal(t, 1, summary.TotalFindings())
	assert.Equal(t, 1, summary.CriticalFindings)
	assert.Zero(t, summary.MediumFindings)
	assert.Contains(t, out.String(), "acme/widget")

	criticalData, err := os.ReadFile(filepath.Join(outputDir, "critical.json"))
	require.NoError(t, err)
	var critical []models.SecretFinding
	require.NoError(t, json.Unmarshal(criticalData, &critical))
	require.Len(t, critical, 1)
	assert.Equal(t, "src/config.py", critical[0].FilePath)
	assert.Equal(t, models.SeverityCritical, critical[0].Severity)

	_, err = os.Stat(filepath.Join(outputDir, "medium.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestEndToEndForkIsNeverScanned(t *testing.T) {
	lister := &stubLister{
		orgRepos: []models.RepositoryRef{
			{Owner: "acme", Name: "source", CloneURL: "https://github.com/acme/source.git"},
			{Owner: "acme", Name: "forked", CloneURL: "https://github.com/acme/forked.git", Fork: true},
		},
	}

	inv := &fakeInvoker{}
	var out bytes.Buffer
	orch := orchestrator.NewOrchestrator(
		github.NewEnumerator(lister, zerolog.Nop()),
		inv,
		classifier.New(nil),
		reporter.NewConsoleReporter(&out, false),
		nil,
		nil,
		zerolog.Nop(),
	)

	target := models.Target{Kind: models.TargetOrganization, Value: "acme"}
	_, err := orch.Run(context.Background(), target, models.EnumerationOptions{IncludeForks: false})
	require.NoError(t, err)

	assert.Equal(t, []string{"acme/source"}, inv.scanned, "the fork must not reach the scanner")
}

type stubLister struct {
	orgRepos []models.RepositoryRef
}

func (s *stubLister) ListOrgRepositories(_ context.Context, _ string) ([]models.RepositoryRef, error) {
	return s.orgRepos, nil
}

func (s *stubLister) ListUserRepositories(_ context.Context, _ string) ([]models.RepositoryRef, error) {
	return nil, nil
}

func (s *stubLister) ListOrgMembers(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

package scanner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/config"
	"github.com/redteamtools/trufflehub/internal/models"
)

// TruffleHogInvoker runs the TruffleHog CLI against a remote repository and
// parses its JSONL output. The tool is treated as an opaque black box: this
// adapter is the only place that knows its invocation mechanics and output
// shape.
type TruffleHogInvoker struct {
	config *config.ScannerConfig
	logger zerolog.Logger
}

// NewTruffleHogInvoker creates a new TruffleHogInvoker.
func NewTruffleHogInvoker(cfg *config.ScannerConfig, logger zerolog.Logger) *TruffleHogInvoker {
	return &TruffleHogInvoker{
		config: cfg,
		logger: logger.With().Str("component", "TruffleHogInvoker").Logger(),
	}
}

// Scan invokes TruffleHog against the repository's clone URL and returns the
// parsed findings. The subprocess runs under a timeout; on expiry it is
// killed and a ScanError wrapping context.DeadlineExceeded is returned. A
// non-zero exit still returns whatever findings were parsed from stdout,
// alongside the ScanError, so completed work is not discarded.
func (inv *TruffleHogInvoker) Scan(ctx context.Context, repo models.RepositoryRef) ([]models.SecretFinding, error) {
	timeout := time.Duration(inv.config.TruffleHogTimeoutSeconds) * time.Second
	scanCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{"git", repo.CloneURL, "--json"}
	if inv.config.OnlyVerified {
		args = append(args, "--only-verified")
	}

	cmd := exec.CommandContext(scanCtx, inv.config.TruffleHogPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	inv.logger.Debug().Str("repository", repo.FullName()).Str("command", cmd.String()).Msg("Executing TruffleHog")

	runErr := cmd.Run()

	if scanCtx.Err() == context.DeadlineExceeded {
		return nil, &ScanError{
			Repository: repo.FullName(),
			Stderr:     stderrBuf.String(),
			Err:        scanCtx.Err(),
		}
	}

	findings := parseFindings(&stdoutBuf, repo, inv.config.OnlyVerified, inv.logger)

	if runErr != nil {
		scanErr := &ScanError{
			Repository: repo.FullName(),
			Stderr:     stderrBuf.String(),
			Err:        runErr,
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			scanErr.ExitCode = exitErr.ExitCode()
		}
		return findings, scanErr
	}

	inv.logger.Debug().Str("repository", repo.FullName()).Int("findings", len(findings)).Msg("TruffleHog scan complete")
	return findings, nil
}

package orchestrator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/classifier"
	"github.com/redteamtools/trufflehub/internal/models"
)

// RepositoryEnumerator expands a target into the repositories to scan.
type RepositoryEnumerator interface {
	Enumerate(ctx context.Context, target models.Target, opts models.EnumerationOptions) ([]models.RepositoryRef, error)
}

// ScannerInvoker runs the external scanner against one repository.
type ScannerInvoker interface {
	Scan(ctx context.Context, repo models.RepositoryRef) ([]models.SecretFinding, error)
}

// ResultReporter receives per-repository results and the final summary.
type ResultReporter interface {
	RepoLine(idx, total int, result models.ScanResult)
	Summary(summary models.RunSummary)
}

// FindingsWriter persists the buffered findings at end of run.
type FindingsWriter interface {
	WriteSeverityFiles(findings []models.SecretFinding) ([]string, error)
}

// RunNotifier is told about finished runs that discovered findings.
type RunNotifier interface {
	NotifyRunSummary(ctx context.Context, summary models.RunSummary)
}

// Orchestrator drives the sequential scan loop: enumerate, then for each
// repository invoke the scanner, classify its findings and report the result.
// One repository's failure never aborts the run; only enumeration failures
// are fatal. On interrupt the loop stops, but everything already accumulated
// is still flushed.
type Orchestrator struct {
	enumerator RepositoryEnumerator
	invoker    ScannerInvoker
	classifier *classifier.Classifier
	reporter   ResultReporter
	writer     FindingsWriter
	notifier   RunNotifier
	logger     zerolog.Logger
}

// NewOrchestrator creates a new Orchestrator. writer and notifier may be nil
// when file output or notifications are not configured.
func NewOrchestrator(
	enumerator RepositoryEnumerator,
	invoker ScannerInvoker,
	cls *classifier.Classifier,
	reporter ResultReporter,
	writer FindingsWriter,
	notifier RunNotifier,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		enumerator: enumerator,
		invoker:    invoker,
		classifier: cls,
		reporter:   reporter,
		writer:     writer,
		notifier:   notifier,
		logger:     logger.With().Str("component", "Orchestrator").Logger(),
	}
}

// Run executes the whole scan. The returned summary reflects every
// repository processed before completion or interruption. The returned error
// is operational (enumeration failed, output files could not be written);
// findings themselves are not an error.
func (o *Orchestrator) Run(ctx context.Context, target models.Target, opts models.EnumerationOptions) (models.RunSummary, error) {
	repos, err := o.enumerator.Enumerate(ctx, target, opts)
	if err != nil {
		return models.RunSummary{Target: target}, err
	}

	o.logger.Info().Int("repositories", len(repos)).Msg("Starting scan")

	builder := models.NewRunSummaryBuilder(target)
	var allFindings []models.SecretFinding
	interrupted := false

	for idx, repo := range repos {
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		findings, scanErr := o.invoker.Scan(ctx, repo)
		if ctx.Err() != nil && scanErr != nil {
			// The in-flight subprocess was killed by the interrupt; its
			// partial output is discarded, completed repositories stay.
			interrupted = true
			break
		}

		for i := range findings {
			o.classifier.ClassifyFinding(&findings[i])
		}

		result := models.ScanResult{
			Repo:     repo,
			Findings: findings,
			Status:   statusOf(findings, scanErr),
			Err:      scanErr,
		}
		if scanErr != nil {
			o.logger.Warn().Err(scanErr).Str("repository", repo.FullName()).Msg("Repository scan failed, continuing")
		}

		o.reporter.RepoLine(idx+1, len(repos), result)
		builder.AddResult(result)
		allFindings = append(allFindings, result.Findings...)
	}

	summary := builder.WithInterrupted(interrupted).Build()

	var flushErr error
	if o.writer != nil {
		// Flush also after an interrupt: completed results are not discarded.
		if _, err := o.writer.WriteSeverityFiles(allFindings); err != nil {
			o.logger.Error().Err(err).Msg("Failed to write findings files")
			flushErr = err
		}
	}

	o.reporter.Summary(summary)

	if o.notifier != nil {
		o.notifier.NotifyRunSummary(context.WithoutCancel(ctx), summary)
	}

	return summary, flushErr
}

func statusOf(findings []models.SecretFinding, scanErr error) models.ScanStatus {
	switch {
	case scanErr != nil:
		return models.StatusFailed
	case len(findings) > 0:
		return models.StatusFindings
	default:
		return models.StatusClean
	}
}

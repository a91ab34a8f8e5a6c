package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/classifier"
	"github.com/redteamtools/trufflehub/internal/config"
	"github.com/redteamtools/trufflehub/internal/github"
	"github.com/redteamtools/trufflehub/internal/logger"
	"github.com/redteamtools/trufflehub/internal/models"
	"github.com/redteamtools/trufflehub/internal/notifier"
	"github.com/redteamtools/trufflehub/internal/orchestrator"
	"github.com/redteamtools/trufflehub/internal/reporter"
	"github.com/redteamtools/trufflehub/internal/scanner"
)

// executeScan wires the configuration and components together and runs the
// scan. Errors returned here are operational failures.
func executeScan(ctx context.Context, opts *cliOptions) (models.RunSummary, error) {
	gCfg, err := loadConfig(opts)
	if err != nil {
		return models.RunSummary{}, err
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		return models.RunSummary{}, err
	}
	if gCfg.ReporterConfig.Silent {
		// Silent mode keeps stdout to scan result lines and mutes chatter.
		zLogger = zLogger.Level(zerolog.ErrorLevel)
	}

	token := os.Getenv(config.GitHubTokenEnvVar)
	if token == "" {
		zLogger.Warn().Msgf("%s not set, rate limits may apply", config.GitHubTokenEnvVar)
	}

	target := resolveTarget(opts)
	if opts.includeMembers && target.Kind != models.TargetOrganization {
		zLogger.Warn().Msg("--include-members only applies to --org targets, ignoring")
		opts.includeMembers = false
	}

	console := reporter.NewConsoleReporter(os.Stdout, gCfg.ReporterConfig.Silent)
	console.PrintBanner()

	var writer orchestrator.FindingsWriter
	if gCfg.ReporterConfig.OutputDir != "" {
		writer = reporter.NewFileWriter(gCfg.ReporterConfig.OutputDir, zLogger)
	}

	var runNotifier orchestrator.RunNotifier
	if gCfg.NotificationConfig.DiscordWebhookURL != "" {
		runNotifier = notifier.NewDiscordNotifier(gCfg.NotificationConfig, zLogger)
	}

	orch := orchestrator.NewOrchestrator(
		github.NewEnumerator(github.NewClient(gCfg.GitHubConfig, token, zLogger), zLogger),
		scanner.NewTruffleHogInvoker(&gCfg.ScannerConfig, zLogger),
		classifier.New(gCfg.ClassifierConfig.MediumPatterns),
		console,
		writer,
		runNotifier,
		zLogger,
	)

	enumOpts := models.EnumerationOptions{
		IncludeForks:   opts.includeForks,
		IncludeMembers: opts.includeMembers,
	}
	return orch.Run(ctx, target, enumOpts)
}

// loadConfig loads the file configuration and applies flag overrides on top.
func loadConfig(opts *cliOptions) (*config.GlobalConfig, error) {
	if opts.results != "all" && opts.results != "valid" {
		return nil, fmt.Errorf("invalid --results value '%s' (must be 'all' or 'valid')", opts.results)
	}

	gCfg, err := config.LoadGlobalConfig(config.GetConfigPath(opts.configPath))
	if err != nil {
		return nil, err
	}

	if opts.outputDir != "" {
		gCfg.ReporterConfig.OutputDir = opts.outputDir
	}
	if opts.silent {
		gCfg.ReporterConfig.Silent = true
	}
	if opts.results == "valid" {
		gCfg.ScannerConfig.OnlyVerified = true
	}

	// The validator checks the output directory exists, so create it first.
	if gCfg.ReporterConfig.OutputDir != "" {
		if err := os.MkdirAll(gCfg.ReporterConfig.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create output directory '%s': %w", gCfg.ReporterConfig.OutputDir, err)
		}
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		return nil, err
	}
	return gCfg, nil
}

func resolveTarget(opts *cliOptions) models.Target {
	switch {
	case opts.org != "":
		return models.Target{Kind: models.TargetOrganization, Value: opts.org}
	case opts.user != "":
		return models.Target{Kind: models.TargetUser, Value: opts.user}
	default:
		return models.Target{Kind: models.TargetRepository, Value: opts.repo}
	}
}

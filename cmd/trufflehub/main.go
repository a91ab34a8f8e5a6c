package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redteamtools/trufflehub/internal/models"
)

// Exit codes. Findings are distinct from operational failures so pipelines
// can tell "secrets detected" apart from "the run itself broke".
const (
	exitClean              = 0
	exitFindingsDetected   = 1
	exitOperationalFailure = 2
	exitInterrupted        = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &cliOptions{}
	var summary models.RunSummary

	rootCmd := newRootCmd(opts, &summary)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if ctx.Err() != nil {
			return exitInterrupted
		}
		return exitOperationalFailure
	}

	if summary.Interrupted {
		return exitInterrupted
	}
	if summary.TotalFindings() > 0 {
		return exitFindingsDetected
	}
	return exitClean
}

// cliOptions are the flag values; file config provides everything else.
type cliOptions struct {
	org            string
	user           string
	repo           string
	includeForks   bool
	includeMembers bool
	outputDir      string
	results        string
	silent         bool
	configPath     string
}

func newRootCmd(opts *cliOptions, summary *models.RunSummary) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trufflehub",
		Short: "Scan GitHub organizations, users or repositories for leaked secrets",
		Long: "trufflehub enumerates the repositories of a GitHub organization, user or a single\n" +
			"repository URL, runs TruffleHog against each one and reports the findings\n" +
			"classified by severity.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := executeScan(cmd.Context(), opts)
			*summary = s
			return err
		},
	}

	rootCmd.Flags().StringVar(&opts.org, "org", "", "GitHub organization name")
	rootCmd.Flags().StringVar(&opts.user, "user", "", "GitHub username")
	rootCmd.Flags().StringVar(&opts.repo, "repo", "", "Single repository URL")
	rootCmd.Flags().BoolVar(&opts.includeForks, "include-forks", false, "Include forked repositories")
	rootCmd.Flags().BoolVar(&opts.includeMembers, "include-members", false, "Include organization member repositories (only with --org)")
	rootCmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Directory to save per-severity findings files")
	rootCmd.Flags().StringVar(&opts.results, "results", "all", "Filter results: 'valid' for verified secrets only, 'all' for everything")
	rootCmd.Flags().BoolVar(&opts.silent, "silent", false, "Only print scan result lines")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML/JSON configuration file")

	rootCmd.MarkFlagsOneRequired("org", "user", "repo")
	rootCmd.MarkFlagsMutuallyExclusive("org", "user", "repo")

	return rootCmd
}

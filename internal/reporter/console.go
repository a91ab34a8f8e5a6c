package reporter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/redteamtools/trufflehub/internal/models"
)

var (
	styleDim      = lipgloss.NewStyle().Faint(true)
	styleBold     = lipgloss.NewStyle().Bold(true)
	styleBanner   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleClean    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleFailed   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const banner = ` _____           __  __ _      _   _       _
|_   _|         / _|/ _| |    | | | |     | |
  | |_ __ _   _| |_| |_| | ___| |_| |_   _| |__
  | | '__| | | |  _|  _| |/ _ \  _  | | | | '_ \
  | | |  | |_| | | | | | |  __/ | | | |_| | |_) |
  \_/_|   \__,_|_| |_| |_|\___\_| |_/\__,_|_.__/`

// ConsoleReporter emits per-repository status lines and the run summary.
// Scan result lines go to out (stdout); informational chatter belongs to the
// logger, not here. In silent mode only repositories with findings produce a
// line.
type ConsoleReporter struct {
	out    io.Writer
	silent bool
}

// NewConsoleReporter creates a new ConsoleReporter writing to out.
func NewConsoleReporter(out io.Writer, silent bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, silent: silent}
}

// PrintBanner prints the startup banner, suppressed in silent mode.
func (r *ConsoleReporter) PrintBanner() {
	if r.silent {
		return
	}
	fmt.Fprintf(r.out, "\n%s\n\n%s\n\n",
		styleBanner.Render(banner),
		styleDim.Render("            GitHub Secret Scanner"))
}

// RepoLine prints the status line for one scanned repository:
// a zero-padded [idx/total] progress prefix, a severity-colored status tag,
// the repository full name and the finding count. Clean repositories print
// nothing in silent mode; failed scans always print.
func (r *ConsoleReporter) RepoLine(idx, total int, result models.ScanResult) {
	padding := len(strconv.Itoa(total))
	progress := styleDim.Render(fmt.Sprintf("[%0*d/%d]", padding, idx, total))

	if result.Status == models.StatusFailed {
		fmt.Fprintf(r.out, "%s %s %s\n", progress, styleFailed.Render("[failed]"), result.Repo.FullName())
		return
	}

	totalFindings := len(result.Findings)
	var status, count string
	switch {
	case totalFindings > 0 && result.MediumCount() > 0:
		status = styleMedium.Render("[medium]")
		count = styleMedium.Render(strconv.Itoa(totalFindings))
	case totalFindings > 0:
		status = styleCritical.Render("[critical]")
		count = styleCritical.Render(strconv.Itoa(totalFindings))
	default:
		if r.silent {
			return
		}
		status = styleClean.Render("[clean]")
		count = styleClean.Render("0")
	}

	fmt.Fprintf(r.out, "%s %s %s %s\n", progress, status, result.Repo.FullName(),
		styleDim.Render("["+count+" findings]"))
}

// Summary prints the closing run summary with the elapsed time.
func (r *ConsoleReporter) Summary(summary models.RunSummary) {
	fmt.Fprintf(r.out, "\n%s critical, %s medium across %s repositories (%d clean, %d failed)\n",
		styleCritical.Render(strconv.Itoa(summary.CriticalFindings)),
		styleMedium.Render(strconv.Itoa(summary.MediumFindings)),
		styleBold.Render(strconv.Itoa(summary.TotalRepositories)),
		summary.CleanRepositories,
		summary.FailedScans)

	tail := fmt.Sprintf("(%.3fs elapsed time)", summary.Duration.Seconds())
	if summary.Interrupted {
		fmt.Fprintf(r.out, "Scan interrupted %s\n", styleDim.Render(tail))
		return
	}
	fmt.Fprintf(r.out, "Scan finished %s\n", styleDim.Render(tail))
}

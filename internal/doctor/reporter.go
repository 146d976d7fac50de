package doctor

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/deepyr/pagegen/internal/output"
)

// StatusIcon returns the icon for a check status.
func StatusIcon(s Status) string {
	if output.NoColor() {
		switch s {
		case StatusPass:
			return "[PASS]"
		case StatusFail:
			return "[FAIL]"
		case StatusWarn:
			return "[WARN]"
		case StatusSkip:
			return "[SKIP]"
		default:
			return "[????]"
		}
	}
	switch s {
	case StatusPass:
		return "✅"
	case StatusFail:
		return "❌"
	case StatusWarn:
		return "⚠️"
	case StatusSkip:
		return "⏭️"
	default:
		return "❓"
	}
}

// PrintResults prints check results to stderr using the output package.
// The caller should check summary.HasFailure for the exit code.
func PrintResults(summary Summary) {
	if output.JSONMode {
		output.JSON(summary)
		return
	}

	output.Info("Running prerequisite checks...")

	lastCategory := ""
	checks := AllChecks()
	for i, r := range summary.Results {
		cat := ""
		if i < len(checks) {
			cat = checks[i].Category
		}
		if cat != lastCategory {
			printCategoryHeader(cat)
			lastCategory = cat
		}
		printCheckResult(r)
	}

	fmt.Fprintln(os.Stderr)
	printSummaryLine(summary)
}

func printCategoryHeader(cat string) {
	var label string
	switch cat {
	case "manifest":
		label = "Manifest"
	case "filesystem":
		label = "Filesystem"
	case "tool":
		label = "Tools"
	default:
		label = cat
	}
	fmt.Fprintln(os.Stderr)
	if output.NoColor() {
		fmt.Fprintf(os.Stderr, "--- %s ---\n", label)
	} else {
		fmt.Fprintf(os.Stderr, "━━ %s ━━\n", label)
	}
}

func printCheckResult(r CheckResult) {
	fmt.Fprintf(os.Stderr, "  %s %s: %s\n", StatusIcon(r.Status), r.Name, r.Message)
	if r.Fix != "" && r.Status != StatusPass {
		fmt.Fprintf(os.Stderr, "     fix: %s\n", r.Fix)
	}
}

func printSummaryLine(summary Summary) {
	line := fmt.Sprintf("%d passed, %d failed, %d warning(s), %d skipped",
		summary.TotalPass, summary.TotalFail, summary.TotalWarn, summary.TotalSkip)
	if summary.HasFailure {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, line)
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(os.Stderr, line)
	}
}

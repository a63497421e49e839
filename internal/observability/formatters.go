// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of one scored pair.
func (p *Printer) PrintMatchResult(result *types.MatchScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.3f  (confidence %.2f)\n", result.OverallScore, result.Confidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skill:      %.3f\n", result.SkillScore))
	sb.WriteString(fmt.Sprintf("Experience: %.3f\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Location:   %.3f\n", result.LocationScore))
	sb.WriteString(fmt.Sprintf("Salary:     %.3f\n", result.SalaryScore))
	if _, used := result.SubScore(types.SignalContent); used {
		sb.WriteString(fmt.Sprintf("Content:    %.3f\n", result.ContentScore))
	}
	if _, used := result.SubScore(types.SignalCollaborative); used {
		sb.WriteString(fmt.Sprintf("Collab:     %.3f\n", result.CollaborativeScore))
	}

	if len(result.Reasons) > 0 {
		sb.WriteString("\nReasons:\n")
		for _, reason := range result.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}
	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, suggestion := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedMatches outputs the top results of a batch run, highest score
// first.
func (p *Printer) PrintRankedMatches(results []*types.MatchScoreResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total pairs scored: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.CandidateID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f  Confidence: %.2f\n", result.OverallScore, result.Confidence))
		if len(result.Reasons) > 0 {
			reason := result.Reasons[0]
			if len(reason) > 40 {
				reason = reason[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/okigami/repoctl/internal/domain"
)

// Output formats for list commands.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#74B9FF"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894"))
)

// renderList writes v as json or yaml, or calls text for the default
// human-readable rendering.
func renderList(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(v)
	case formatText, "":
		_, err := fmt.Fprint(w, text())
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}

// renderReleases formats releases as a simple aligned table.
func renderReleases(releases []domain.Release) string {
	if len(releases) == 0 {
		return mutedStyle.Render("no releases") + "\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-20s %-24s %-10s %s", "TAG", "NAME", "STATE", "CREATED")))
	b.WriteString("\n")
	for _, r := range releases {
		state := "published"
		switch {
		case r.IsDraft:
			state = "draft"
		case r.IsPrerelease:
			state = "prerelease"
		}
		fmt.Fprintf(&b, "%-20s %-24s %-10s %s\n",
			r.TagName, r.Name, state, r.CreatedAt.Format("2006-01-02"))
	}
	return b.String()
}

// renderRuns formats workflow runs as a simple aligned table.
func renderRuns(runs []domain.WorkflowRun) string {
	if len(runs) == 0 {
		return mutedStyle.Render("no workflow runs") + "\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %-20s %-24s %-10s %s", "ID", "WORKFLOW", "TITLE", "RESULT", "BRANCH")))
	b.WriteString("\n")
	for _, r := range runs {
		result := r.Conclusion
		if result == "" {
			result = r.Status
		}
		switch result {
		case "failure":
			result = badStyle.Render(result)
		case "success":
			result = goodStyle.Render(result)
		}
		fmt.Fprintf(&b, "%-12d %-20s %-24s %-10s %s\n",
			r.ID, r.WorkflowName, r.DisplayTitle, result, r.HeadBranch)
	}
	return b.String()
}

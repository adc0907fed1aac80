package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/wakadash/wakadash/internal/models"
	"github.com/wakadash/wakadash/internal/ui/styles"
)

// ShortSHA abbreviates a commit hash to seven characters.
func ShortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// SplitMessage separates a commit message into its subject line and body.
// The body keeps its own internal newlines but loses surrounding blanks.
func SplitMessage(message string) (subject, body string) {
	subject, body, _ = strings.Cut(message, "\n")
	return strings.TrimSpace(subject), strings.TrimSpace(body)
}

// TimeAgo renders the distance between two instants as a coarse relative
// phrase ("3 hours ago"). Future or zero timestamps render as "just now".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "just now"
	}
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}

	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s ago", unit)
		}
		return fmt.Sprintf("%d %ss ago", n, unit)
	}

	switch {
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/24/30), "month")
	default:
		return plural(int(d.Hours()/24/365), "year")
	}
}

// RenderCommitCard renders the latest-commit panel body. A nil commit
// renders a placeholder line.
func RenderCommitCard(c *models.CommitSummary, now time.Time) string {
	if c == nil {
		return styles.HelpStyle.Render("No recent public commits")
	}

	subject, body := SplitMessage(c.Message)
	if subject == "" {
		subject = "(no commit message)"
	}

	header := styles.CommitRepoStyle.Render(c.Repo) + " " + styles.CommitShaStyle.Render(ShortSHA(c.SHA))

	meta := make([]string, 0, 3)
	author := c.AuthorName
	if author == "" {
		author = c.AuthorLogin
	}
	if author != "" {
		meta = append(meta, author)
	}
	if when, err := time.Parse(time.RFC3339, c.CommittedAt); err == nil {
		meta = append(meta, TimeAgo(when, now))
	}

	lines := []string{header, subject}
	if body != "" {
		lines = append(lines, styles.CommitBodyStyle.Render(body))
	}
	if len(meta) > 0 {
		lines = append(lines, styles.CommitMetaStyle.Render(strings.Join(meta, " · ")))
	}
	if stats := renderCommitStats(c); stats != "" {
		lines = append(lines, stats)
	}
	return strings.Join(lines, "\n")
}

// renderCommitStats renders the files/additions/deletions line, omitting
// whichever counters the detail fetch could not resolve.
func renderCommitStats(c *models.CommitSummary) string {
	parts := make([]string, 0, 3)
	if c.FilesChanged != nil {
		noun := "files"
		if *c.FilesChanged == 1 {
			noun = "file"
		}
		parts = append(parts, fmt.Sprintf("%d %s changed", *c.FilesChanged, noun))
	}
	if c.Additions != nil {
		parts = append(parts, styles.AdditionsStyle.Render(fmt.Sprintf("+%d", *c.Additions)))
	}
	if c.Deletions != nil {
		parts = append(parts, styles.DeletionsStyle.Render(fmt.Sprintf("-%d", *c.Deletions)))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/wakadash/wakadash/internal/models"
)

func sampleSlices() []models.Slice {
	return []models.Slice{
		{Name: "go", Hours: 2, Seconds: 7200},
		{Name: "python", Hours: 1, Seconds: 3600},
		{Name: "Other", Hours: 0.5, Seconds: 1800},
	}
}

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.Label() != "Loading" {
		t.Errorf("Label = %s, want Loading", s.Label())
	}

	if s.View() == "" {
		t.Error("View returned empty")
	}
	if s.ViewWithLabel() == "" {
		t.Error("ViewWithLabel returned empty")
	}
	if s.Init() == nil {
		t.Error("Init should return command")
	}
	if _, cmd := s.Update(spinner.TickMsg{}); cmd == nil {
		t.Error("Update should return command for tick")
	}
}

func TestRenderRing(t *testing.T) {
	out := RenderRing(sampleSlices(), 10, NoSlice)
	if !strings.Contains(out, "█") {
		t.Error("ring render has no filled cells")
	}
	if got := strings.Count(out, "\n"); got != 9 {
		t.Errorf("ring render rows = %d, want 10", got+1)
	}
}

func TestRenderRingEmpty(t *testing.T) {
	out := RenderRing(nil, 10, NoSlice)
	if !strings.Contains(out, "No data") {
		t.Errorf("empty ring render = %q, want placeholder", out)
	}
}

func TestRingSliceAt(t *testing.T) {
	slices := sampleSlices()
	const d = 12

	// Directly above center, on the band: the first slice starts at
	// twelve o'clock.
	if got := RingSliceAt(slices, d, d, 0); got != 0 {
		t.Errorf("top cell slice = %d, want 0", got)
	}

	// The center hole is not part of any slice.
	if got := RingSliceAt(slices, d, d, d/2); got != NoSlice {
		t.Errorf("center cell slice = %d, want NoSlice", got)
	}

	// Out of bounds.
	if got := RingSliceAt(slices, d, -1, 0); got != NoSlice {
		t.Errorf("out-of-bounds slice = %d, want NoSlice", got)
	}
}

func TestRenderLegendRows(t *testing.T) {
	out := RenderLegendRows(sampleSlices(), NoSlice)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("legend rows = %d, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "go") || !strings.Contains(lines[0], "2 hours (57%)") {
		t.Errorf("first row = %q, want go with 2 hours (57%%)", lines[0])
	}

	active := RenderLegendRows(sampleSlices(), 1)
	if !strings.Contains(strings.Split(active, "\n")[1], "> ") {
		t.Error("active row missing pointer")
	}
}

func TestRenderStatTile(t *testing.T) {
	out := RenderStatTile("Total Time", "106 hrs")
	if !strings.Contains(out, "Total Time") || !strings.Contains(out, "106 hrs") {
		t.Errorf("stat tile = %q", out)
	}

	placeholder := RenderStatTile("Total Lines", "")
	if !strings.Contains(placeholder, "—") {
		t.Errorf("empty stat tile = %q, want placeholder dash", placeholder)
	}
}

func TestShortSHA(t *testing.T) {
	if got := ShortSHA("0123456789abcdef"); got != "0123456" {
		t.Errorf("ShortSHA = %q, want 0123456", got)
	}
	if got := ShortSHA("abc"); got != "abc" {
		t.Errorf("short input ShortSHA = %q, want abc", got)
	}
}

func TestSplitMessage(t *testing.T) {
	subject, body := SplitMessage("fix parser\n\nhandle empty input\nand unicode")
	if subject != "fix parser" {
		t.Errorf("subject = %q", subject)
	}
	if body != "handle empty input\nand unicode" {
		t.Errorf("body = %q", body)
	}

	subject, body = SplitMessage("one liner")
	if subject != "one liner" || body != "" {
		t.Errorf("one liner = %q / %q", subject, body)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-10 * time.Minute), "10 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-49 * time.Hour), "2 days ago"},
		{"months", now.AddDate(0, -3, 0), "3 months ago"},
		{"years", now.AddDate(-1, -1, 0), "1 year ago"},
		{"zero time", time.Time{}, "just now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeAgo(tt.t, now); got != tt.want {
				t.Errorf("TimeAgo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCommitCard(t *testing.T) {
	files, adds, dels := 3, 40, 12
	c := &models.CommitSummary{
		SHA:          "0123456789abcdef",
		Repo:         "octocat/hello",
		Message:      "fix parser\n\ndetails",
		AuthorName:   "Octo Cat",
		CommittedAt:  "2026-03-01T09:00:00Z",
		FilesChanged: &files,
		Additions:    &adds,
		Deletions:    &dels,
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	out := RenderCommitCard(c, now)
	for _, want := range []string{"octocat/hello", "0123456", "fix parser", "details", "Octo Cat", "3 hours ago", "3 files changed", "+40", "-12"} {
		if !strings.Contains(out, want) {
			t.Errorf("commit card missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderCommitCardBody(t *testing.T) {
	c := &models.CommitSummary{
		SHA:     "0123456789abcdef",
		Repo:    "octocat/hello",
		Message: "fix parser\n\nHandle empty input without panicking.\nCovers the trailing-newline case too.",
	}

	out := RenderCommitCard(c, time.Now())
	if !strings.Contains(out, "Handle empty input without panicking.") {
		t.Errorf("commit card missing message body in:\n%s", out)
	}
	if !strings.Contains(out, "Covers the trailing-newline case too.") {
		t.Errorf("commit card missing second body line in:\n%s", out)
	}

	c.Message = "subject only"
	out = RenderCommitCard(c, time.Now())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Errorf("subject-only card has %d lines, want 2:\n%s", len(lines), out)
	}
}

func TestRenderCommitCardNil(t *testing.T) {
	out := RenderCommitCard(nil, time.Now())
	if !strings.Contains(out, "No recent public commits") {
		t.Errorf("nil commit card = %q", out)
	}
}

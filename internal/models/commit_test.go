package models

import "testing"

func intPtr(v int) *int { return &v }

func TestEnrich_FillsGaps(t *testing.T) {
	c := CommitSummary{
		SHA:         "abc1234def",
		Repo:        "octo/widgets",
		Message:     "feed message",
		AuthorLogin: "octo",
	}
	c.Enrich(&CommitDetail{
		Message:      "full message\n\nwith body",
		AuthorName:   "Octo Cat",
		CommittedAt:  "2025-08-30T12:00:00Z",
		FilesChanged: intPtr(3),
		Additions:    intPtr(10),
		Deletions:    intPtr(2),
	})

	if c.Message != "full message\n\nwith body" {
		t.Errorf("Message = %q, want detail message", c.Message)
	}
	if c.AuthorName != "Octo Cat" {
		t.Errorf("AuthorName = %q", c.AuthorName)
	}
	if c.AuthorLogin != "octo" {
		t.Errorf("AuthorLogin = %q, want feed value retained", c.AuthorLogin)
	}
	if c.FilesChanged == nil || *c.FilesChanged != 3 {
		t.Errorf("FilesChanged = %v, want 3", c.FilesChanged)
	}
}

func TestEnrich_NeverClearsKnownFields(t *testing.T) {
	c := CommitSummary{
		SHA:             "abc",
		Repo:            "octo/widgets",
		Message:         "feed message",
		AuthorName:      "Feed Author",
		AuthorLogin:     "a",
		AuthorAvatarURL: "https://example.com/a.png",
		CommittedAt:     "2025-08-29T00:00:00Z",
	}
	c.Enrich(&CommitDetail{})

	if c.AuthorLogin != "a" {
		t.Errorf("AuthorLogin = %q, want %q", c.AuthorLogin, "a")
	}
	if c.Message != "feed message" || c.AuthorName != "Feed Author" {
		t.Error("enrichment cleared fields known from the feed")
	}
	if c.AuthorAvatarURL == "" || c.CommittedAt == "" {
		t.Error("enrichment cleared avatar or date")
	}
}

func TestEnrich_NilDetailIsNoop(t *testing.T) {
	c := CommitSummary{SHA: "abc", Repo: "r", Message: "m"}
	c.Enrich(nil)
	if c.Message != "m" {
		t.Errorf("Message = %q", c.Message)
	}
}

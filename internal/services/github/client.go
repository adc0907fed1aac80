// Package github provides the public-activity-feed and commit-detail
// clients. Both are non-critical enhancements: every failure is swallowed
// to nil and never reaches the caller as an error.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wakadash/wakadash/internal/logger"
	"github.com/wakadash/wakadash/internal/models"
)

const userAgent = "wakadash-commit-fetch"

// Client calls the GitHub REST API anonymously.
type Client struct {
	baseURL    string
	user       string
	httpClient *http.Client
}

// New creates a GitHub client for the given user. A nil httpClient gets a
// default with a 30 second timeout.
func New(baseURL, user string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, user: user, httpClient: httpClient}
}

type wireCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  struct {
		Name string `json:"name"`
	} `json:"author"`
}

type wireEvent struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload struct {
		Commits    []wireCommit `json:"commits"`
		HeadCommit *wireCommit  `json:"head_commit"`
		Head       string       `json:"head"`
	} `json:"payload"`
	Actor struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"actor"`
	CreatedAt string `json:"created_at"`
}

type wireCommitDetail struct {
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"author"`
	Files *[]struct {
		Filename string `json:"filename"`
	} `json:"files"`
	Stats *struct {
		Additions int `json:"additions"`
		Deletions int `json:"deletions"`
	} `json:"stats"`
}

// LatestPublicCommit scans the user's public events in reverse-chronological
// order and returns the first push event that resolves to both a commit SHA
// and a repository name. No matching event, or any network/parse failure,
// yields nil.
func (c *Client) LatestPublicCommit(ctx context.Context) *models.CommitSummary {
	body, err := c.get(ctx, fmt.Sprintf("%s/users/%s/events/public", c.baseURL, c.user))
	if err != nil {
		logger.Debug("events feed unavailable", "error", err)
		return nil
	}

	var events []wireEvent
	if err := json.Unmarshal(body, &events); err != nil {
		logger.Debug("events feed parse failed", "error", err)
		return nil
	}

	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}

		commit := ev.Payload.HeadCommit
		if len(ev.Payload.Commits) > 0 {
			commit = &ev.Payload.Commits[0]
		}

		sha := ev.Payload.Head
		if sha == "" && commit != nil {
			sha = commit.SHA
		}
		if sha == "" || ev.Repo.Name == "" {
			continue
		}

		summary := &models.CommitSummary{
			SHA:             sha,
			Repo:            ev.Repo.Name,
			URL:             fmt.Sprintf("https://github.com/%s/commit/%s", ev.Repo.Name, sha),
			AuthorLogin:     ev.Actor.Login,
			AuthorAvatarURL: ev.Actor.AvatarURL,
			CommittedAt:     ev.CreatedAt,
		}
		if commit != nil {
			summary.Message = commit.Message
			summary.AuthorName = commit.Author.Name
		}
		return summary
	}

	return nil
}

// CommitDetails fetches the full commit for enrichment. Nil on any failure.
func (c *Client) CommitDetails(ctx context.Context, repo, sha string) *models.CommitDetail {
	body, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/commits/%s", c.baseURL, repo, sha))
	if err != nil {
		logger.Debug("commit detail unavailable", "repo", repo, "sha", sha, "error", err)
		return nil
	}

	var wire wireCommitDetail
	if err := json.Unmarshal(body, &wire); err != nil {
		logger.Debug("commit detail parse failed", "error", err)
		return nil
	}

	detail := &models.CommitDetail{
		Message:     wire.Commit.Message,
		AuthorName:  wire.Commit.Author.Name,
		CommittedAt: wire.Commit.Author.Date,
	}
	if wire.Author != nil {
		detail.AuthorLogin = wire.Author.Login
		detail.AuthorAvatarURL = wire.Author.AvatarURL
	}
	if wire.Files != nil {
		n := len(*wire.Files)
		detail.FilesChanged = &n
	}
	if wire.Stats != nil {
		additions, deletions := wire.Stats.Additions, wire.Stats.Deletions
		detail.Additions = &additions
		detail.Deletions = &deletions
	}
	return detail
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github request failed (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

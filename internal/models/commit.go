package models

// CommitSummary describes the latest public commit. It starts as a partial
// summary assembled from the public events feed and may later be enriched
// with data from the commit-detail endpoint.
type CommitSummary struct {
	SHA             string
	Repo            string
	URL             string
	Message         string
	AuthorName      string
	AuthorLogin     string
	AuthorAvatarURL string
	CommittedAt     string

	FilesChanged *int
	Additions    *int
	Deletions    *int
}

// CommitDetail holds the fields consumed from the commit-detail endpoint.
type CommitDetail struct {
	Message         string
	AuthorName      string
	AuthorLogin     string
	AuthorAvatarURL string
	CommittedAt     string

	FilesChanged *int
	Additions    *int
	Deletions    *int
}

// Enrich merges detail data into the summary. Fields already known from the
// feed are only replaced when the detail endpoint returns a value for them;
// enrichment never clears a known field.
func (c *CommitSummary) Enrich(d *CommitDetail) {
	if d == nil {
		return
	}
	if d.Message != "" {
		c.Message = d.Message
	}
	if d.AuthorName != "" {
		c.AuthorName = d.AuthorName
	}
	if d.AuthorLogin != "" {
		c.AuthorLogin = d.AuthorLogin
	}
	if d.AuthorAvatarURL != "" {
		c.AuthorAvatarURL = d.AuthorAvatarURL
	}
	if d.CommittedAt != "" {
		c.CommittedAt = d.CommittedAt
	}
	if d.FilesChanged != nil {
		c.FilesChanged = d.FilesChanged
	}
	if d.Additions != nil {
		c.Additions = d.Additions
	}
	if d.Deletions != nil {
		c.Deletions = d.Deletions
	}
}

// Package activity aggregates the independent coding-statistics sources
// into one immutable view model.
package activity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wakadash/wakadash/internal/logger"
	"github.com/wakadash/wakadash/internal/models"
)

// StatsSource is the time-tracking statistics provider. Its all-time stats
// call is the only fatal dependency of an aggregation run.
type StatsSource interface {
	FetchAllTimeStats(ctx context.Context) (*models.AllTimeStats, error)
	FetchCurrentUser(ctx context.Context) (*models.WakaUser, error)
}

// CommitSource is the public-activity-feed and commit-detail provider.
// Both calls swallow failures to nil.
type CommitSource interface {
	LatestPublicCommit(ctx context.Context) *models.CommitSummary
	CommitDetails(ctx context.Context, repo, sha string) *models.CommitDetail
}

// LinesSource is the badge-text scraper. Failures degrade to "".
type LinesSource interface {
	LinesText(ctx context.Context) string
}

// Service builds activity view models from the configured sources.
type Service struct {
	stats   StatsSource
	commits CommitSource
	lines   LinesSource
}

// New creates the aggregation service.
func New(stats StatsSource, commits CommitSource, lines LinesSource) *Service {
	return &Service{stats: stats, commits: commits, lines: lines}
}

// Build fetches all sources concurrently and assembles the view model.
// Each call resolves independently: soft sources degrade their field and
// nothing else. Only a failure of the all-time stats call (configuration
// or upstream) fails the whole build, in which case the caller renders a
// diagnostic instead of the view.
func (s *Service) Build(ctx context.Context) (*models.ActivityViewModel, error) {
	var (
		stats     *models.AllTimeStats
		user      *models.WakaUser
		commit    *models.CommitSummary
		linesText string
	)

	// The group carries no cancellation: a stats failure is fatal to the
	// result but the soft calls are left to finish on their own.
	var g errgroup.Group

	g.Go(func() error {
		var err error
		stats, err = s.stats.FetchAllTimeStats(ctx)
		return err
	})

	g.Go(func() error {
		u, err := s.stats.FetchCurrentUser(ctx)
		if err != nil {
			logger.Debug("current user unavailable", "error", err)
			return nil
		}
		user = u
		return nil
	})

	g.Go(func() error {
		commit = s.commits.LatestPublicCommit(ctx)
		return nil
	})

	g.Go(func() error {
		linesText = s.lines.LinesText(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Enrichment depends on the feed result, so it runs after the join.
	if commit != nil {
		commit.Enrich(s.commits.CommitDetails(ctx, commit.Repo, commit.SHA))
	}

	var totalSeconds float64
	for _, p := range stats.Languages {
		totalSeconds += p.Seconds
	}

	vm := &models.ActivityViewModel{
		TotalTimeText: coalesce(
			stats.TotalIncludingOtherText,
			formatTotalHours(totalSeconds),
		),
		DailyAverageText: coalesce(
			stats.DailyAverageIncludingOtherText,
			stats.DailyAverageText,
			formatDailyAverage(totalSeconds, stats.DaysIncludingHolidays),
		),
		RangeText:      stats.RangeText,
		TotalLinesText: linesText,
		ProfileURL:     profileURL(user),
		Languages:      Bucketize(stats.Languages),
		Categories:     Bucketize(stats.Categories),
		LatestCommit:   commit,
	}
	return vm, nil
}

package activity

import (
	"math"
	"sort"

	"github.com/wakadash/wakadash/internal/models"
)

// maxNamedSlices is how many named buckets survive before the rest fold
// into the synthesized "Other" remainder.
const maxNamedSlices = 8

// otherName is the synthesized remainder bucket. An upstream bucket with
// this exact name is discarded and recomputed locally so the remainder
// invariant holds.
const otherName = "Other"

// Bucketize merges raw stat points into at most nine chart slices: the top
// eight buckets by seconds plus a locally computed "Other" remainder. The
// slice seconds always sum to the filtered input total exactly; rounding
// only affects the display Hours field.
func Bucketize(points []models.StatPoint) []models.Slice {
	merged := mergePoints(points)

	var total float64
	for _, b := range merged {
		total += b.Seconds
	}

	// Drop the upstream "Other" bucket; its seconds stay in the total and
	// resurface through the remainder.
	candidates := make([]models.Bucket, 0, len(merged))
	for _, b := range merged {
		if b.Name != otherName {
			candidates = append(candidates, b)
		}
	}

	// Stable keeps encounter order for equal seconds.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Seconds > candidates[j].Seconds
	})

	top := candidates
	if len(top) > maxNamedSlices {
		top = top[:maxNamedSlices]
	}

	var topTotal float64
	for _, b := range top {
		topTotal += b.Seconds
	}

	buckets := make([]models.Bucket, len(top), len(top)+1)
	copy(buckets, top)
	if remainder := total - topTotal; remainder > 0 {
		buckets = append(buckets, models.Bucket{Name: otherName, Seconds: remainder})
	}

	slices := make([]models.Slice, 0, len(buckets))
	for _, b := range buckets {
		slices = append(slices, models.Slice{
			Name:    b.Name,
			Hours:   roundHours(b.Seconds),
			Seconds: b.Seconds,
		})
	}
	return slices
}

// mergePoints drops non-positive points and merges duplicates by exact
// name, preserving first-encounter order. Unnamed points fold to "Unknown".
func mergePoints(points []models.StatPoint) []models.Bucket {
	totals := make(map[string]float64, len(points))
	order := make([]string, 0, len(points))

	for _, p := range points {
		if p.Seconds <= 0 {
			continue
		}
		name := p.Name
		if name == "" {
			name = "Unknown"
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += p.Seconds
	}

	merged := make([]models.Bucket, 0, len(order))
	for _, name := range order {
		merged = append(merged, models.Bucket{Name: name, Seconds: totals[name]})
	}
	return merged
}

// roundHours converts seconds to hours rounded to one decimal.
func roundHours(seconds float64) float64 {
	return math.Round(seconds/3600*10) / 10
}

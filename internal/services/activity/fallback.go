package activity

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wakadash/wakadash/internal/models"
)

// coalesce returns the first non-empty value. The fallback precedence rules
// are all expressed through it so the order stays visible at the call site.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// formatTotalHours renders a seconds total as "N hours" with N rounded to
// one decimal, without a trailing zero fraction.
func formatTotalHours(totalSeconds float64) string {
	hours := math.Round(totalSeconds/3600*10) / 10
	return strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
}

// formatDailyAverage renders the locally computed daily average as
// "H hrs M mins", dropping the hrs segment when zero and degrading to
// "0 secs" when both round to zero.
func formatDailyAverage(totalSeconds float64, days int) string {
	if days < 1 {
		days = 1
	}
	avg := totalSeconds / float64(days)

	hrs := int(avg / 3600)
	mins := int(math.Round(math.Mod(avg, 3600) / 60))

	switch {
	case hrs > 0:
		return fmt.Sprintf("%d hrs %d mins", hrs, mins)
	case mins > 0:
		return fmt.Sprintf("%d mins", mins)
	default:
		return "0 secs"
	}
}

// profileURL resolves the provider profile link: canonical URL, then the
// generic profile URL, then a link synthesized from the username.
func profileURL(user *models.WakaUser) string {
	if user == nil {
		return ""
	}
	synthesized := ""
	if user.Username != "" {
		synthesized = "https://wakatime.com/@" + user.Username
	}
	return coalesce(user.URL, user.ProfileURL, synthesized)
}

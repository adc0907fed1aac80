package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/wakadash/wakadash/internal/ui/styles"
	"github.com/wakadash/wakadash/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderConfigCard renders the effective configuration card.
func (m *Model) renderConfigCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("GitHub User", m.config.GitHubUser))
		rows = append(rows, m.renderConfigRow("WakaTime API", m.config.WakaTimeBaseURL))
		rows = append(rows, m.renderConfigRow("WakaTime Key", maskSecret(m.config.WakaTimeAPIKey)))
		rows = append(rows, m.renderConfigRow("GitHub API", m.config.GitHubBaseURL))
		rows = append(rows, m.renderConfigRow("Badge URL", m.config.BadgeURL))
		rows = append(rows, m.renderConfigRow("Cache", m.config.CachePath))
		rows = append(rows, m.renderConfigRow("Refresh Every", m.config.RefreshInterval.String()))
		rows = append(rows, m.renderConfigRow("HTTP Timeout", m.config.RequestTimeout.String()))
		if m.config.EnvFile != "" {
			rows = append(rows, m.renderConfigRow("Env File", m.config.EnvFile))
		}
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a configuration key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderAboutCard renders the about/version information card.
func (m *Model) renderAboutCard() string {
	cardWidth := m.cardWidth()

	ver, commit := version.Get()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About wakadash"))
	rows = append(rows, "")

	rows = append(rows, m.renderConfigRow("Version", ver))
	rows = append(rows, m.renderConfigRow("Git Commit", commit))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))
	rows = append(rows, "")

	if m.state != nil && !m.state.GetLastUpdated().IsZero() {
		rows = append(rows, m.renderConfigRow("Last Refresh", m.state.GetLastUpdated().Format("15:04:05")))
	} else {
		rows = append(rows, m.renderConfigRow("Last Refresh", "never"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}
	return cardWidth
}

// maskSecret hides all but the last four characters of a credential.
func maskSecret(s string) string {
	if s == "" {
		return "not set"
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

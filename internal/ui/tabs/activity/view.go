package activity

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/wakadash/wakadash/internal/models"
	"github.com/wakadash/wakadash/internal/ui/components"
	"github.com/wakadash/wakadash/internal/ui/selection"
	"github.com/wakadash/wakadash/internal/ui/styles"
)

const columnGap = "    "

// View renders the activity tab.
func (m *Model) View() string {
	view := m.state.GetView()

	if view == nil {
		if err := m.state.BuildError(); err != nil {
			return m.renderFatalError(err)
		}
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	var sections []string
	sections = append(sections, m.renderTitle())

	if err := m.state.BuildError(); err != nil {
		sections = append(sections, m.renderStaleWarning(err))
	}

	sections = append(sections, m.renderTiles(), "")

	// Record where the charts start for mouse hit testing.
	m.layout.chartsTop = lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, sections...))
	sections = append(sections, m.renderCharts())

	sections = append(sections, "", m.renderCommit(), m.renderProfile())

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Coding Activity")
	subtitle := styles.HelpStyle.Render("All-time language and category breakdown")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderFatalError(err error) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ErrorTextStyle.Render("Could not load coding activity"),
		"",
		styles.HelpStyle.Render(err.Error()),
		"",
		styles.HelpStyle.Render("Press r to retry"),
	)
	panel := styles.CardStyle.BorderForeground(styles.Error).Render(content)
	return styles.CenterBoth(panel, m.width, m.height)
}

func (m *Model) renderStaleWarning(err error) string {
	return styles.WarningTextStyle.Render(
		fmt.Sprintf("Showing stale data, last refresh failed: %v", err),
	) + "\n"
}

func (m *Model) renderTiles() string {
	view := m.state.GetView()

	tiles := []string{
		components.RenderStatTile("Total Time", view.TotalTimeText),
		components.RenderStatTile("Daily Average", view.DailyAverageText),
		components.RenderStatTile("Total Lines", view.TotalLinesText),
		components.RenderStatTile("Range", view.RangeText),
	}

	padded := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		padded = append(padded, lipgloss.NewStyle().Width(22).Render(tile))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

func (m *Model) renderCharts() string {
	view := m.state.GetView()

	left := m.renderChartColumn("Languages", view.Languages, m.languages, m.focus == paneLanguages)
	right := m.renderChartColumn("Categories", view.Categories, m.categories, m.focus == paneCategories)

	// The subtitle occupies one row above each ring.
	m.layout.ringTop = m.layout.chartsTop + 1
	m.layout.legendTop = m.layout.ringTop + ringDiameter

	m.layout.leftX = 0
	m.layout.leftWidth = lipgloss.Width(left)
	m.layout.rightX = m.layout.leftWidth + lipgloss.Width(columnGap)
	m.layout.rightWidth = lipgloss.Width(right)
	m.layout.leftRows = len(view.Languages)
	m.layout.rightRows = len(view.Categories)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, columnGap, right)
}

func (m *Model) renderChartColumn(title string, slices []models.Slice, machine *selection.Machine, focused bool) string {
	titleStyle := styles.SubTitleStyle
	if focused {
		titleStyle = titleStyle.Underline(true)
	}

	active := machine.Display()
	if len(slices) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(title),
			styles.HelpStyle.Render("No data available"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		components.RenderRing(slices, ringDiameter, active),
		components.RenderLegendRows(slices, active),
	)
}

func (m *Model) renderCommit() string {
	view := m.state.GetView()

	header := styles.CardTitleStyle.Render("Latest Commit")
	body := components.RenderCommitCard(view.LatestCommit, time.Now())
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (m *Model) renderProfile() string {
	view := m.state.GetView()
	if view.ProfileURL == "" {
		return ""
	}
	return styles.HelpStyle.Render("Profile: ") + styles.InfoTextStyle.Render(view.ProfileURL) +
		styles.HelpStyle.Render("  (o to open)")
}

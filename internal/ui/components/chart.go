// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wakadash/wakadash/internal/models"
	"github.com/wakadash/wakadash/internal/ui/styles"
)

// NoSlice marks the absence of a highlighted slice.
const NoSlice = -1

// Ring band radii as fractions of the outer radius. The highlighted
// slice gets a thicker band by dropping its inner edge.
const (
	ringHole       = 0.52
	ringHoleActive = 0.38
)

// RenderRing draws a donut chart of the slices as a colored character
// grid. diameter is the height in rows; the width doubles it to keep the
// ring round in a terminal cell aspect ratio. When active is a valid
// index that sector renders bold and thicker while the rest dim.
func RenderRing(slices []models.Slice, diameter, active int) string {
	if len(slices) == 0 || diameter < 4 {
		return styles.HelpStyle.Render("No data available")
	}

	total := sliceTotal(slices)
	if total <= 0 {
		return styles.HelpStyle.Render("No data available")
	}

	var b strings.Builder
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter*2; x++ {
			idx, dist := ringCell(slices, total, diameter, x, y)
			if idx == NoSlice {
				b.WriteByte(' ')
				continue
			}

			hole := ringHole
			if idx == active {
				hole = ringHoleActive
			}
			if dist < hole {
				b.WriteByte(' ')
				continue
			}

			style := lipgloss.NewStyle().Foreground(styles.SliceColor(idx))
			switch {
			case idx == active:
				style = style.Bold(true)
			case active != NoSlice:
				style = style.Faint(true)
			}
			b.WriteString(style.Render("█"))
		}
		if y < diameter-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RingSliceAt maps a cell coordinate inside the rendered ring back to its
// slice index, for mouse hit testing. Coordinates outside the band return
// NoSlice.
func RingSliceAt(slices []models.Slice, diameter, x, y int) int {
	total := sliceTotal(slices)
	if total <= 0 || diameter < 4 {
		return NoSlice
	}
	if x < 0 || y < 0 || x >= diameter*2 || y >= diameter {
		return NoSlice
	}

	idx, dist := ringCell(slices, total, diameter, x, y)
	if idx == NoSlice || dist < ringHoleActive {
		return NoSlice
	}
	return idx
}

// ringCell resolves one grid cell to a slice index and its normalized
// distance from the center. Cells outside the outer radius return NoSlice.
func ringCell(slices []models.Slice, total float64, diameter, x, y int) (int, float64) {
	radius := float64(diameter) / 2

	// Terminal cells are about twice as tall as wide, so x counts half.
	dx := (float64(x)+0.5)/2 - radius
	dy := float64(y) + 0.5 - radius

	dist := math.Hypot(dx, dy) / radius
	if dist > 1 {
		return NoSlice, dist
	}

	// Angle measured clockwise from twelve o'clock.
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	frac := angle / (2 * math.Pi)

	var cum float64
	for i, s := range slices {
		cum += s.Seconds / total
		if frac < cum || i == len(slices)-1 {
			return i, dist
		}
	}
	return len(slices) - 1, dist
}

func sliceTotal(slices []models.Slice) float64 {
	var total float64
	for _, s := range slices {
		total += s.Seconds
	}
	return total
}

// RenderLegendRows renders one legend row per slice: a color swatch, the
// name, and "H hours (P%)". The active row gets a pointer and bold text
// while the rest dim.
func RenderLegendRows(slices []models.Slice, active int) string {
	total := sliceTotal(slices)
	if total <= 0 {
		return ""
	}

	rows := make([]string, 0, len(slices))
	for i, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(styles.SliceColor(i)).Render("■")
		percent := s.Seconds / total * 100
		text := fmt.Sprintf("%s %s  %s hours (%.0f%%)", swatch, s.Name, formatHours(s.Hours), percent)

		switch {
		case i == active:
			rows = append(rows, styles.LegendActiveRowStyle.Render(text))
		case active != NoSlice:
			rows = append(rows, styles.LegendDimStyle.Render(text))
		default:
			rows = append(rows, styles.LegendRowStyle.Render(text))
		}
	}
	return strings.Join(rows, "\n")
}

// formatHours renders one-decimal hour values without a trailing ".0".
func formatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%.0f", hours)
	}
	return fmt.Sprintf("%.1f", hours)
}

// RenderStatTile renders a labeled value block. Empty values show an
// em dash placeholder.
func RenderStatTile(label, value string) string {
	if value == "" {
		value = "—"
	}
	return styles.StatLabelStyle.Render(label) + "\n" + styles.StatValueStyle.Render(value)
}

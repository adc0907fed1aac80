// Package activity provides the coding activity tab: summary tiles, the
// language and category ring charts, and the latest commit card.
package activity

import (
	"os/exec"
	"runtime"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wakadash/wakadash/internal/app"
	"github.com/wakadash/wakadash/internal/models"
	"github.com/wakadash/wakadash/internal/ui/components"
	"github.com/wakadash/wakadash/internal/ui/selection"
	"github.com/wakadash/wakadash/internal/ui/styles"
)

// ringDiameter is the chart height in rows; rendered width is twice that.
const ringDiameter = 11

// contentOffset is the top-left of the tab's content within its own view,
// read from the document style. Mouse coordinates arrive with the tab bar
// above already subtracted by the app shell.
func contentOffset() (x, y int) {
	x = styles.DocStyle.GetMarginLeft() + styles.DocStyle.GetPaddingLeft() + styles.DocStyle.GetBorderLeftSize()
	y = styles.DocStyle.GetMarginTop() + styles.DocStyle.GetPaddingTop() + styles.DocStyle.GetBorderTopSize()
	return x, y
}

type pane int

const (
	paneLanguages pane = iota
	paneCategories
)

// keyMap defines the key bindings specific to the activity tab.
type keyMap struct {
	NextSlice   key.Binding
	PrevSlice   key.Binding
	Pin         key.Binding
	Clear       key.Binding
	SwitchPane  key.Binding
	OpenProfile key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextSlice: key.NewBinding(
			key.WithKeys("right", "l", "down", "j"),
			key.WithHelp("→/l", "next slice"),
		),
		PrevSlice: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/h", "prev slice"),
		),
		Pin: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pin slice"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear highlight"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		OpenProfile: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open profile"),
		),
	}
}

// chartLayout records where the rings and legends ended up in the last
// render, for mouse hit testing.
type chartLayout struct {
	chartsTop  int
	ringTop    int
	legendTop  int
	leftX      int
	leftWidth  int
	rightX     int
	rightWidth int
	leftRows   int
	rightRows  int
}

// Model represents the activity tab state.
type Model struct {
	state   *app.State
	spinner components.LoadingSpinner
	keys    keyMap

	languages  *selection.Machine
	categories *selection.Machine
	focus      pane

	layout chartLayout

	width  int
	height int
}

// New creates a new activity tab model.
func New(state *app.State) *Model {
	return &Model{
		state:      state,
		spinner:    components.NewSpinner("Fetching coding activity..."),
		keys:       defaultKeyMap(),
		languages:  selection.New(0),
		categories: selection.New(0),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case app.ActivityLoadedMsg:
		m.languages.Resize(len(msg.View.Languages))
		m.categories.Resize(len(msg.View.Categories))

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case tea.MouseMsg:
		m.handleMouseMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) focused() *selection.Machine {
	if m.focus == paneCategories {
		return m.categories
	}
	return m.languages
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextSlice):
		m.focused().Next()
	case key.Matches(msg, m.keys.PrevSlice):
		m.focused().Prev()
	case key.Matches(msg, m.keys.Pin):
		if i := m.focused().Hovered(); i != selection.None {
			m.focused().Toggle(i)
		}
	case key.Matches(msg, m.keys.Clear):
		m.languages.Clear()
		m.categories.Clear()
	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == paneLanguages {
			m.focus = paneCategories
		} else {
			m.focus = paneLanguages
		}
	case key.Matches(msg, m.keys.OpenProfile):
		if view := m.state.GetView(); view != nil && view.ProfileURL != "" {
			return openURLCmd(view.ProfileURL)
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	offX, offY := contentOffset()
	x := msg.X - offX
	y := msg.Y - offY

	target, idx := m.hitTest(x, y)

	switch msg.Action {
	case tea.MouseActionMotion:
		switch target {
		case paneLanguages:
			m.languages.Enter(idx)
			m.categories.Leave()
		case paneCategories:
			m.categories.Enter(idx)
			m.languages.Leave()
		default:
			m.languages.Leave()
			m.categories.Leave()
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch target {
		case paneLanguages:
			if idx != selection.None {
				m.languages.Toggle(idx)
				m.focus = paneLanguages
			}
		case paneCategories:
			if idx != selection.None {
				m.categories.Toggle(idx)
				m.focus = paneCategories
			}
		}
	}
}

// hitTest maps tab-local coordinates to a chart pane and slice index. A
// pane of -1 means the pointer is outside both charts.
func (m *Model) hitTest(x, y int) (pane, int) {
	view := m.state.GetView()
	if view == nil {
		return -1, selection.None
	}

	if idx, ok := m.columnHit(x, y, m.layout.leftX, m.layout.leftWidth, m.layout.leftRows, view.Languages); ok {
		return paneLanguages, idx
	}
	if idx, ok := m.columnHit(x, y, m.layout.rightX, m.layout.rightWidth, m.layout.rightRows, view.Categories); ok {
		return paneCategories, idx
	}
	return -1, selection.None
}

// columnHit resolves (x, y) against one column: the ring grid maps by
// angle, legend rows map by line.
func (m *Model) columnHit(x, y, colX, colWidth, legendRows int, slices []models.Slice) (int, bool) {
	if x < colX || x >= colX+colWidth {
		return 0, false
	}
	if y >= m.layout.ringTop && y < m.layout.ringTop+ringDiameter && x < colX+ringDiameter*2 {
		return components.RingSliceAt(slices, ringDiameter, x-colX, y-m.layout.ringTop), true
	}
	if y >= m.layout.legendTop && y < m.layout.legendTop+legendRows {
		return y - m.layout.legendTop, true
	}
	return 0, false
}

// SetSize sets the available size for the tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// openURLCmd opens the profile link with the platform opener.
func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		err := cmd.Start()
		return app.OpenURLResultMsg{URL: url, Success: err == nil, Error: err}
	}
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextSlice,
		m.keys.PrevSlice,
		m.keys.Pin,
		m.keys.SwitchPane,
		m.keys.OpenProfile,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextSlice, m.keys.PrevSlice},
		{m.keys.Pin, m.keys.Clear, m.keys.SwitchPane},
		{m.keys.OpenProfile},
	}
}

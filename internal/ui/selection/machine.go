// Package selection tracks hover and pinned-selection state for a list of
// chart slices.
package selection

// None marks the absence of a hovered or selected index.
const None = -1

// Machine holds the hover/selection state for one pane of n slices.
// Hover is transient pointer or keyboard focus; selection is sticky and
// survives hover changes until toggled off or cleared.
type Machine struct {
	hovered  int
	selected int
	size     int
}

// New returns a machine for n slices with nothing hovered or selected.
func New(n int) *Machine {
	return &Machine{hovered: None, selected: None, size: n}
}

// Resize updates the slice count and drops any state that now points past
// the end.
func (m *Machine) Resize(n int) {
	m.size = n
	if m.hovered >= n {
		m.hovered = None
	}
	if m.selected >= n {
		m.selected = None
	}
}

// Enter hovers index i. Out-of-range indices clear the hover instead.
func (m *Machine) Enter(i int) {
	if i < 0 || i >= m.size {
		m.hovered = None
		return
	}
	m.hovered = i
}

// Leave clears the hover without touching the selection.
func (m *Machine) Leave() {
	m.hovered = None
}

// Toggle pins index i, or unpins it when it is already selected. Toggling
// also moves the hover to i so keyboard focus follows the action.
func (m *Machine) Toggle(i int) {
	if i < 0 || i >= m.size {
		return
	}
	if m.selected == i {
		m.selected = None
		return
	}
	m.selected = i
	m.hovered = i
}

// Next advances the hover, wrapping past the last slice. From the empty
// state it lands on the first slice.
func (m *Machine) Next() {
	if m.size == 0 {
		return
	}
	if m.hovered == None {
		m.hovered = 0
		return
	}
	m.hovered = (m.hovered + 1) % m.size
}

// Prev moves the hover backwards, wrapping past the first slice. From the
// empty state it lands on the last slice.
func (m *Machine) Prev() {
	if m.size == 0 {
		return
	}
	if m.hovered == None {
		m.hovered = m.size - 1
		return
	}
	m.hovered = (m.hovered - 1 + m.size) % m.size
}

// Clear drops both hover and selection.
func (m *Machine) Clear() {
	m.hovered = None
	m.selected = None
}

// Hovered returns the hovered index or None.
func (m *Machine) Hovered() int { return m.hovered }

// Selected returns the pinned index or None.
func (m *Machine) Selected() int { return m.selected }

// Display returns the index the chart should highlight: the pinned
// selection when there is one, otherwise the hover.
func (m *Machine) Display() int {
	if m.selected != None {
		return m.selected
	}
	return m.hovered
}

package domain

// Tab pairs a display title with the editor it owns
type Tab struct {
	Title  string
	Editor *Editor
}

// NewTab creates a tab titled after the editor's file
func NewTab(ed *Editor) *Tab {
	return &Tab{Title: ed.Title(), Editor: ed}
}

// TabContainer is an ordered list of tabs plus the selected index.
// The index is only meaningful while the container is non-empty.
type TabContainer struct {
	tabs     []*Tab
	selected int
}

// NewTabContainer creates an empty container
func NewTabContainer() *TabContainer {
	return &TabContainer{}
}

// Len returns the number of tabs
func (c *TabContainer) Len() int {
	return len(c.tabs)
}

// Tabs returns the tabs in order
func (c *TabContainer) Tabs() []*Tab {
	return c.tabs
}

// SelectedIndex returns the selected index, or -1 when empty
func (c *TabContainer) SelectedIndex() int {
	if len(c.tabs) == 0 {
		return -1
	}
	return c.selected
}

// Push appends a tab. Selection is left to the caller.
func (c *TabContainer) Push(tab *Tab) {
	c.tabs = append(c.tabs, tab)
}

// Selected returns the selected tab, or nil when empty
func (c *TabContainer) Selected() *Tab {
	if c.selected < 0 || c.selected >= len(c.tabs) {
		return nil
	}
	return c.tabs[c.selected]
}

// Select moves the selection. Out of range leaves the state untouched.
func (c *TabContainer) Select(index int) error {
	if index < 0 || index >= len(c.tabs) {
		return &IndexError{Index: index, Len: len(c.tabs)}
	}
	c.selected = index
	return nil
}

// Remove drops the tab at index together with its editor. A selection at or
// after the removed slot is clamped to min(selected, len-1).
func (c *TabContainer) Remove(index int) (*Tab, error) {
	if index < 0 || index >= len(c.tabs) {
		return nil, &IndexError{Index: index, Len: len(c.tabs)}
	}
	tab := c.tabs[index]
	c.tabs = append(c.tabs[:index], c.tabs[index+1:]...)

	if len(c.tabs) == 0 {
		c.selected = -1
		return tab, nil
	}
	if c.selected >= index {
		c.selected = min(c.selected, len(c.tabs)-1)
	}
	return tab, nil
}

// Titles returns the tab titles in order
func (c *TabContainer) Titles() []string {
	titles := make([]string, len(c.tabs))
	for i, t := range c.tabs {
		titles[i] = t.Title
	}
	return titles
}

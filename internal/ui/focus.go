package ui

// Column identifies which of the three hierarchical lists receives
// navigation keys. Exactly one is focused at any time.
type Column int

const (
	ColumnSessions Column = iota
	ColumnWindows
	ColumnPanes
)

const columnCount = 3

// Next cycles focus forward with wraparound.
func (c Column) Next() Column {
	return (c + 1) % columnCount
}

// Prev cycles focus backward with wraparound.
func (c Column) Prev() Column {
	return (c + columnCount - 1) % columnCount
}

func (c Column) String() string {
	switch c {
	case ColumnSessions:
		return "sessions"
	case ColumnWindows:
		return "windows"
	case ColumnPanes:
		return "panes"
	}
	return "unknown"
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-deck/internal/tmux"
)

const (
	headerRows = 1
	footerRows = 1
	minWidth   = 40
	minHeight  = 8
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return "terminal too small"
	}

	bodyHeight := m.height - headerRows - footerRows
	var body string
	switch mode := m.mode.(type) {
	case inputMode:
		body = m.renderInputDialog(mode, bodyHeight)
	case confirmMode:
		body = m.renderConfirmDialog(mode, bodyHeight)
	default:
		body = m.renderColumns(bodyHeight)
	}

	return strings.Join([]string{
		m.renderHeader(),
		body,
		m.renderFooter(),
	}, "\n")
}

func (m *Model) renderHeader() string {
	title := "tmux-deck"
	if m.serverDown {
		title += "  [no server]"
	}
	return m.styles.Header.Render(truncate.String(title, uint(m.width)))
}

// renderColumns lays the three lists out side by side, 30/35/35 of the
// available width. The focused column carries the highlighted border.
func (m *Model) renderColumns(height int) string {
	w1 := m.width * 30 / 100
	w2 := m.width * 35 / 100
	w3 := m.width - w1 - w2

	sessions := m.renderColumn("Sessions", m.sessionLines(w1-4), m.focus == ColumnSessions, w1, height)
	windows := m.renderColumn("Windows", m.windowLines(w2-4), m.focus == ColumnWindows, w2, height)
	panes := m.renderColumn("Panes", m.paneLines(w3-4), m.focus == ColumnPanes, w3, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, sessions, windows, panes)
}

func (m *Model) renderColumn(title string, lines []string, focused bool, width, height int) string {
	border := m.styles.BlurredBorder
	if focused {
		border = m.styles.FocusedBorder
	}
	content := m.styles.ColumnTitle.Render(title) + "\n" + strings.Join(lines, "\n")
	return border.Width(width - 2).Height(height - 2).Render(content)
}

func (m *Model) sessionLines(width int) []string {
	sessions := m.store.Sessions()
	if len(sessions) == 0 {
		if m.serverDown {
			return []string{m.styles.ItemDetail.Render("(no server running)")}
		}
		return []string{m.styles.ItemDetail.Render("(no sessions)")}
	}
	lines := make([]string, len(sessions))
	for i, s := range sessions {
		lines[i] = m.sessionLine(s, i == m.store.SessionIndex(), width)
	}
	return lines
}

func (m *Model) sessionLine(s tmux.Session, selected bool, width int) string {
	marker := "  "
	if s.Attached {
		marker = m.styles.ActiveMarker.Render("* ")
	}
	text := fmt.Sprintf("%s (%d)", s.Name, s.Windows)
	if selected {
		return marker + m.styles.SelectedItem.Render(fitLine(text, width))
	}
	return marker + m.styles.Item.Render(truncate.String(text, uint(width)))
}

func (m *Model) windowLines(width int) []string {
	windows := m.store.Windows()
	if len(windows) == 0 {
		return []string{m.styles.ItemDetail.Render("(no windows)")}
	}
	lines := make([]string, len(windows))
	for i, w := range windows {
		lines[i] = m.windowLine(w, i == m.store.WindowIndex(), width)
	}
	return lines
}

func (m *Model) windowLine(w tmux.Window, selected bool, width int) string {
	marker := "  "
	if w.Active {
		marker = m.styles.ActiveMarker.Render("* ")
	}
	text := fmt.Sprintf("%d: %s [%d panes]", w.Index, w.Name, w.Panes)
	if selected {
		return marker + m.styles.SelectedItem.Render(fitLine(text, width))
	}
	return marker + m.styles.Item.Render(truncate.String(text, uint(width)))
}

// paneLines renders each pane as a two-line block: the command line and a
// detail line with the working directory and dimensions.
func (m *Model) paneLines(width int) []string {
	panes := m.store.Panes()
	if len(panes) == 0 {
		return []string{m.styles.ItemDetail.Render("(no panes)")}
	}
	var lines []string
	for i, p := range panes {
		lines = append(lines, m.paneBlock(p, i == m.store.PaneIndex(), width)...)
	}
	return lines
}

func (m *Model) paneBlock(p tmux.Pane, selected bool, width int) []string {
	marker := "  "
	if p.Active {
		marker = m.styles.ActiveMarker.Render("* ")
	}
	head := fmt.Sprintf("%d: %s", p.Index, p.Command)
	detail := fmt.Sprintf("   %s  %dx%d", p.Path, p.Width, p.Height)
	if selected {
		return []string{
			marker + m.styles.SelectedItem.Render(fitLine(head, width)),
			m.styles.SelectedItem.Render(fitLine(detail, width)),
		}
	}
	return []string{
		marker + m.styles.Item.Render(truncate.String(head, uint(width))),
		m.styles.ItemDetail.Render(truncate.String(detail, uint(width))),
	}
}

// fitLine truncates to the column width and pads back out to it, so the
// selection background covers the whole row.
func fitLine(text string, width int) string {
	text = truncate.String(text, uint(width))
	if gap := width - runewidth.StringWidth(text); gap > 0 {
		text += strings.Repeat(" ", gap)
	}
	return text
}

func (m *Model) renderInputDialog(mode inputMode, height int) string {
	box := m.styles.DialogInput.Render(
		m.styles.ColumnTitle.Render(mode.purpose.title()) + "\n\n" +
			mode.field.View() + "\n\n" +
			m.styles.ItemDetail.Render("enter: confirm  esc: cancel"),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderConfirmDialog(mode confirmMode, height int) string {
	question := fmt.Sprintf("Kill %s %q?", mode.action.kind.noun(), mode.action.label)
	box := m.styles.DialogConfirm.Render(
		m.styles.Error.Render(question) + "\n\n" +
			m.styles.ItemDetail.Render("y: confirm  n/esc: cancel"),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderFooter() string {
	if !m.status.empty() && !m.status.expired(time.Now()) {
		style := m.styles.Info
		if m.status.isError {
			style = m.styles.Error
		}
		return style.Render(truncate.String(m.status.text, uint(m.width)))
	}
	return m.styles.Footer.Render(truncate.String(m.helpText(), uint(m.width)))
}

// helpText lists the keys meaningful in the current mode and focus, in the
// style of tmux's own status line.
func (m *Model) helpText() string {
	switch m.mode.(type) {
	case inputMode:
		return "enter: confirm  esc: cancel"
	case confirmMode:
		return "y: confirm  n/esc: cancel"
	}
	base := "q: quit  r: refresh  tab: next column"
	switch m.focus {
	case ColumnSessions:
		return base + "  enter: attach  n: new session  R: rename  d: kill"
	case ColumnWindows:
		return base + "  enter: attach  n: new window  R: rename  d: kill"
	case ColumnPanes:
		return base + "  n: split  d: kill"
	}
	return base
}

// Package tmux translates domain operations into tmux command invocations
// and parses their delimited output into typed entities. List output uses
// tab-separated fields: tab cannot be typed into a session or window name in
// practice, so it never collides with display text. The field order for each
// entity is fixed by the format constants below.
package tmux

import (
	"fmt"
	"strconv"
	"strings"
)

const fieldSep = "\t"

const (
	sessionFormat = "#{session_id}\t#{session_name}\t#{session_windows}\t#{session_created}\t#{session_attached}"
	windowFormat  = "#{window_id}\t#{window_index}\t#{window_name}\t#{window_layout}\t#{window_active}\t#{window_panes}"
	paneFormat    = "#{pane_id}\t#{pane_index}\t#{pane_current_command}\t#{pane_current_path}\t#{pane_width}\t#{pane_height}\t#{pane_active}"

	sessionFieldCount = 5
	windowFieldCount  = 6
	paneFieldCount    = 7
)

// Session is one tmux session as reported by list-sessions.
type Session struct {
	ID       string
	Name     string
	Windows  int
	Created  int64
	Attached bool
}

// Window is one tmux window scoped to a session.
type Window struct {
	ID     string
	Index  int
	Name   string
	Layout string
	Active bool
	Panes  int
}

// Pane is one tmux pane scoped to a window.
type Pane struct {
	ID      string
	Index   int
	Command string
	Path    string
	Width   int
	Height  int
	Active  bool
}

// ParseSessionLine parses one list-sessions output line.
func ParseSessionLine(line string) (Session, error) {
	fields, err := splitFields("session", line, sessionFieldCount)
	if err != nil {
		return Session{}, err
	}
	windows, err := parseInt("session", line, "window count", fields[2])
	if err != nil {
		return Session{}, err
	}
	created, err := parseInt64("session", line, "created timestamp", fields[3])
	if err != nil {
		return Session{}, err
	}
	attached, err := parseFlag("session", line, "attached flag", fields[4])
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:       fields[0],
		Name:     fields[1],
		Windows:  windows,
		Created:  created,
		Attached: attached,
	}, nil
}

// ParseWindowLine parses one list-windows output line.
func ParseWindowLine(line string) (Window, error) {
	fields, err := splitFields("window", line, windowFieldCount)
	if err != nil {
		return Window{}, err
	}
	index, err := parseInt("window", line, "index", fields[1])
	if err != nil {
		return Window{}, err
	}
	active, err := parseFlag("window", line, "active flag", fields[4])
	if err != nil {
		return Window{}, err
	}
	panes, err := parseInt("window", line, "pane count", fields[5])
	if err != nil {
		return Window{}, err
	}
	return Window{
		ID:     fields[0],
		Index:  index,
		Name:   fields[2],
		Layout: fields[3],
		Active: active,
		Panes:  panes,
	}, nil
}

// ParsePaneLine parses one list-panes output line.
func ParsePaneLine(line string) (Pane, error) {
	fields, err := splitFields("pane", line, paneFieldCount)
	if err != nil {
		return Pane{}, err
	}
	index, err := parseInt("pane", line, "index", fields[1])
	if err != nil {
		return Pane{}, err
	}
	width, err := parseInt("pane", line, "width", fields[4])
	if err != nil {
		return Pane{}, err
	}
	height, err := parseInt("pane", line, "height", fields[5])
	if err != nil {
		return Pane{}, err
	}
	active, err := parseFlag("pane", line, "active flag", fields[6])
	if err != nil {
		return Pane{}, err
	}
	return Pane{
		ID:      fields[0],
		Index:   index,
		Command: fields[2],
		Path:    fields[3],
		Width:   width,
		Height:  height,
		Active:  active,
	}, nil
}

// MarshalLine is the inverse of ParseSessionLine for the modeled fields.
// Used by refresh trace payloads.
func (s Session) MarshalLine() string {
	return strings.Join([]string{
		s.ID,
		s.Name,
		strconv.Itoa(s.Windows),
		strconv.FormatInt(s.Created, 10),
		flagField(s.Attached),
	}, fieldSep)
}

// MarshalLine is the inverse of ParseWindowLine for the modeled fields.
func (w Window) MarshalLine() string {
	return strings.Join([]string{
		w.ID,
		strconv.Itoa(w.Index),
		w.Name,
		w.Layout,
		flagField(w.Active),
		strconv.Itoa(w.Panes),
	}, fieldSep)
}

// MarshalLine is the inverse of ParsePaneLine for the modeled fields.
func (p Pane) MarshalLine() string {
	return strings.Join([]string{
		p.ID,
		strconv.Itoa(p.Index),
		p.Command,
		p.Path,
		strconv.Itoa(p.Width),
		strconv.Itoa(p.Height),
		flagField(p.Active),
	}, fieldSep)
}

func parseSessions(raw string) ([]Session, error) {
	out := []Session{}
	for _, line := range outputLines(raw) {
		s, err := ParseSessionLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func parseWindows(raw string) ([]Window, error) {
	out := []Window{}
	for _, line := range outputLines(raw) {
		w, err := ParseWindowLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func parsePanes(raw string) ([]Pane, error) {
	out := []Pane{}
	for _, line := range outputLines(raw) {
		p, err := ParsePaneLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// outputLines preserves tmux's reported order exactly; no re-sorting.
func outputLines(raw string) []string {
	text := strings.TrimRight(raw, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func splitFields(kind, line string, want int) ([]string, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != want {
		return nil, &ParseError{
			Kind:   kind,
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", want, len(fields)),
		}
	}
	return fields, nil
}

func parseInt(kind, line, what, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, &ParseError{Kind: kind, Line: line, Reason: fmt.Sprintf("bad %s %q", what, field)}
	}
	return n, nil
}

func parseInt64(kind, line, what, field string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: kind, Line: line, Reason: fmt.Sprintf("bad %s %q", what, field)}
	}
	return n, nil
}

// parseFlag accepts tmux boolean format output; session_attached reports a
// client count on some releases, so any positive value counts as set.
func parseFlag(kind, line, what, field string) (bool, error) {
	n, err := parseInt(kind, line, what, field)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func flagField(set bool) string {
	if set {
		return "1"
	}
	return "0"
}

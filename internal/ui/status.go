package ui

import "time"

const statusTTL = 4 * time.Second

// statusLine holds a transient footer message. Errors stick around until
// the next key press or refresh replaces them; informational messages
// expire after statusTTL.
type statusLine struct {
	text    string
	isError bool
	setAt   time.Time
}

func (s statusLine) empty() bool {
	return s.text == ""
}

func (s statusLine) expired(now time.Time) bool {
	if s.empty() || s.isError {
		return false
	}
	return now.Sub(s.setAt) > statusTTL
}

func infoStatus(text string) statusLine {
	return statusLine{text: text, setAt: time.Now()}
}

func errorStatus(text string) statusLine {
	return statusLine{text: text, isError: true, setAt: time.Now()}
}

package state

// selection tracks which entry of a collection is selected. Index is -1 when
// the collection is empty; ID remembers the entry so a refresh can find it
// again even if tmux reports it at a different position.
type selection struct {
	index int
	id    string
}

func noSelection() selection {
	return selection{index: -1}
}

// reconcile maps a previous selection onto a freshly queried id list. The
// previously selected id wins when still present; otherwise the same
// positional index, then the last entry, then nothing.
func (s selection) reconcile(ids []string) selection {
	if len(ids) == 0 {
		return noSelection()
	}
	if s.id != "" {
		for i, id := range ids {
			if id == s.id {
				return selection{index: i, id: id}
			}
		}
	}
	idx := s.index
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ids) {
		idx = len(ids) - 1
	}
	return selection{index: idx, id: ids[idx]}
}

// move shifts the selection by delta, clamped at both ends. No wraparound.
func (s selection) move(delta int, ids []string) selection {
	if len(ids) == 0 {
		return noSelection()
	}
	idx := s.index + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ids) {
		idx = len(ids) - 1
	}
	return selection{index: idx, id: ids[idx]}
}

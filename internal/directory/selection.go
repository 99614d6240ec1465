package directory

// Selection is the set of diner ids marked for the next campaign.
// IDs keeps the order in which ids were added.
type Selection struct {
	order []string
	index map[string]int
}

func NewSelection(ids ...string) *Selection {
	s := &Selection{index: make(map[string]int)}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Toggle adds id if absent and removes it if present.
func (s *Selection) Toggle(id string) {
	if s.Contains(id) {
		s.remove(id)
		return
	}
	s.add(id)
}

// SelectAll replaces the selection with exactly the visible ids.
func (s *Selection) SelectAll(visibleIDs []string) {
	s.Clear()
	for _, id := range visibleIDs {
		s.add(id)
	}
}

func (s *Selection) Clear() {
	s.order = nil
	s.index = make(map[string]int)
}

func (s *Selection) Count() int {
	return len(s.index)
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) add(id string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
}

func (s *Selection) remove(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
}

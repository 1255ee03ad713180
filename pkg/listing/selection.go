package listing

// Selection is a set of selected ids over the currently displayed collection.
// Membership does not depend on the page being shown.
type Selection struct {
	items    []string
	selected map[string]struct{}
}

func NewSelection(items []string) *Selection {
	s := &Selection{selected: map[string]struct{}{}}
	s.SetItems(items)
	return s
}

// SetItems replaces the displayed collection. Selected ids that are no longer present
// are dropped.
func (s *Selection) SetItems(items []string) {
	s.items = append([]string(nil), items...)
	present := make(map[string]struct{}, len(items))
	for _, id := range items {
		present[id] = struct{}{}
	}
	for id := range s.selected {
		if _, ok := present[id]; !ok {
			delete(s.selected, id)
		}
	}
}

// Toggle ignores ids outside the displayed collection.
func (s *Selection) Toggle(id string) {
	if !s.present(id) {
		return
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// ToggleAll selects everything unless everything is already selected, then clears.
func (s *Selection) ToggleAll() {
	if s.AllSelected() {
		s.Clear()
		return
	}
	s.SelectAll()
}

func (s *Selection) SelectAll() {
	for _, id := range s.items {
		s.selected[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.selected = map[string]struct{}{}
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *Selection) Len() int { return len(s.selected) }

func (s *Selection) AllSelected() bool {
	return len(s.items) > 0 && len(s.selected) == len(s.items)
}

func (s *Selection) SomeSelected() bool {
	return len(s.selected) > 0 && len(s.selected) < len(s.items)
}

// IDs returns the selected ids in the order of the displayed collection.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.selected))
	for _, id := range s.items {
		if _, ok := s.selected[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Selection) present(id string) bool {
	for _, v := range s.items {
		if v == id {
			return true
		}
	}
	return false
}

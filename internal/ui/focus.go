package ui

// FocusManager rotates keyboard focus across the docked panels.
type FocusManager struct {
	Current  string   // id of the focused panel
	Order    []string // rotation order
	OnChange func(from, to string)
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) string {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

// Next advances focus to the next panel in order and returns its id.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move(f.Order[(f.index()+1)%len(f.Order)])
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(f.Order[i])
}

// SetFocus focuses the given panel id, reporting whether it is known.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.move(id)
			return true
		}
	}
	return false
}

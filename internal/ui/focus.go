package ui

// FocusManager tracks which element panel receives scroll keys and rotates
// focus in tab order.
type FocusManager struct {
	Current  string   // ID of the focused panel
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first id of order.
func NewFocusManager(order []string, onChange func(from, to string)) *FocusManager {
	f := &FocusManager{Order: order, OnChange: onChange}
	if len(order) > 0 {
		f.set(order[0])
	}
	return f
}

// Next advances focus to the next panel in order and returns its id.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous panel in order and returns its id.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// SetFocus focuses id. Returns false if id is not in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	i := f.index(f.Current)
	if i < 0 && delta < 0 {
		i = 0
	}
	f.set(f.Order[((i+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

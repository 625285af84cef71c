package slide

// Element is a display target a Container writes into.
type Element interface {
	SetContent(html string)
	ScrollToBottom()
}

// Document resolves element ids. A Container never holds on to the returned
// Element; it looks it up again on every render.
type Document interface {
	Element(id string) (Element, bool)
}

// MemoryElement records what a Container wrote into it.
type MemoryElement struct {
	Content string
	// Scrolls counts ScrollToBottom calls.
	Scrolls int
}

func (e *MemoryElement) SetContent(html string) { e.Content = html }
func (e *MemoryElement) ScrollToBottom()        { e.Scrolls++ }

// MemoryDocument is an in-memory Document keyed by element id.
type MemoryDocument struct {
	elements map[string]*MemoryElement
}

var _ Document = (*MemoryDocument)(nil)

// NewMemoryDocument creates a document holding an empty element per id.
func NewMemoryDocument(ids ...string) *MemoryDocument {
	d := &MemoryDocument{elements: make(map[string]*MemoryElement)}
	for _, id := range ids {
		d.Add(id)
	}
	return d
}

// Add registers an element for id (or returns the existing one).
func (d *MemoryDocument) Add(id string) *MemoryElement {
	if e, ok := d.elements[id]; ok {
		return e
	}
	e := &MemoryElement{}
	d.elements[id] = e
	return e
}

// Element implements Document.
func (d *MemoryDocument) Element(id string) (Element, bool) {
	e, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// Content returns the current content of element id.
// Missing elements yield "" and false.
func (d *MemoryDocument) Content(id string) (string, bool) {
	e, ok := d.elements[id]
	if !ok {
		return "", false
	}
	return e.Content, true
}

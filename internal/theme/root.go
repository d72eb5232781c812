package theme

// RootSurface is the document-root analogue: a class set plus attribute map
// consumed by whatever renders the application chrome.
type RootSurface interface {
	AddClass(name string)
	RemoveClass(name string)
	SetAttribute(key, value string)
}

// MemoryRoot is an in-memory RootSurface.
type MemoryRoot struct {
	Classes map[string]bool
	Attrs   map[string]string
}

func NewMemoryRoot() *MemoryRoot {
	return &MemoryRoot{
		Classes: make(map[string]bool),
		Attrs:   make(map[string]string),
	}
}

func (r *MemoryRoot) AddClass(name string) {
	r.Classes[name] = true
}

func (r *MemoryRoot) RemoveClass(name string) {
	delete(r.Classes, name)
}

func (r *MemoryRoot) SetAttribute(key, value string) {
	r.Attrs[key] = value
}

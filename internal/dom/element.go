package dom

// Element is an opaque handle to an element of a loaded document.
// Handles returned for the same node compare equal.
type Element interface {
	ID() string
	Tag() string
	Attr(name string) (string, bool)
	Text() string
}

// Ref is an element lookup result that may be absent.
type Ref struct {
	el Element
}

func Some(el Element) Ref {
	return Ref{el: el}
}

func None() Ref {
	return Ref{}
}

func (r Ref) Get() (Element, bool) {
	return r.el, r.el != nil
}

func (r Ref) Present() bool {
	return r.el != nil
}

// Document is the read-only view of a page used to build the registry.
type Document interface {
	GetElementByID(id string) Ref
	QuerySelectorAll(selector string) []Element
}

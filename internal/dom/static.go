package dom

// Static is an in-memory Document. Lookups only see what was registered
// with WithID and WithAll.
type Static struct {
	ids       map[string]*StaticElement
	selectors map[string][]Element
}

type StaticElement struct {
	Ident   string
	TagName string
	Attrs   map[string]string
	Body    string
}

func NewStatic() *Static {
	return &Static{
		ids:       map[string]*StaticElement{},
		selectors: map[string][]Element{},
	}
}

// WithID registers a <div> with the given id. Registering the same id
// twice keeps the first element, like a browser would.
func (s *Static) WithID(ids ...string) *Static {
	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = &StaticElement{Ident: id, TagName: "div"}
	}

	return s
}

// WithAll registers n anonymous elements matched by selector.
func (s *Static) WithAll(selector string, n int) *Static {
	for range n {
		s.selectors[selector] = append(s.selectors[selector], &StaticElement{TagName: "label"})
	}

	return s
}

// Without drops previously registered ids.
func (s *Static) Without(ids ...string) *Static {
	for _, id := range ids {
		delete(s.ids, id)
	}

	return s
}

func (s *Static) GetElementByID(id string) Ref {
	if el, ok := s.ids[id]; ok {
		return Some(el)
	}

	return None()
}

func (s *Static) QuerySelectorAll(selector string) []Element {
	found := s.selectors[selector]
	out := make([]Element, len(found))
	copy(out, found)

	return out
}

func (e *StaticElement) ID() string { return e.Ident }
func (e *StaticElement) Tag() string { return e.TagName }
func (e *StaticElement) Text() string {
	return e.Body
}

func (e *StaticElement) Attr(name string) (string, bool) {
	if name == "id" && e.Ident != "" {
		return e.Ident, true
	}
	v, ok := e.Attrs[name]

	return v, ok
}

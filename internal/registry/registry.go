package registry

import (
	"github.com/brogergvhs/cometdom/internal/dom"
)

// Registry is the result of resolving every binding against one document.
// It is built once by Build and never re-queries the document.
type Registry struct {
	refs  map[Name]dom.Ref
	sets  map[Name][]dom.Element
	views []Member
	names []Name
}

func Build(doc dom.Document) *Registry {
	r := &Registry{
		refs: map[Name]dom.Ref{},
		sets: map[Name][]dom.Element{},
	}

	for _, b := range Bindings() {
		r.names = append(r.names, b.Name)

		switch b.Lookup {
		case ByID:
			r.refs[b.Name] = doc.GetElementByID(b.Selector)
		case QueryAll:
			found := doc.QuerySelectorAll(b.Selector)
			if found == nil {
				found = []dom.Element{}
			}
			r.sets[b.Name] = found
		case Group:
			r.views = append(r.views, b.Members...)
		}
	}

	return r
}

// Ref returns the element bound to name. Unknown names and node-set or group
// bindings are reported absent.
func (r *Registry) Ref(name Name) dom.Ref {
	return r.refs[name]
}

// All returns a copy of the node set bound to name.
func (r *Registry) All(name Name) []dom.Element {
	set, ok := r.sets[name]
	if !ok {
		return nil
	}
	out := make([]dom.Element, len(set))
	copy(out, set)

	return out
}

func (r *Registry) FitLabels() []dom.Element {
	return r.All(FitLabels)
}

// ViewEntry is one keyed member of the views group.
type ViewEntry struct {
	Key string
	Ref dom.Ref
}

// Views returns the views group in declaration order.
func (r *Registry) Views() []ViewEntry {
	out := make([]ViewEntry, 0, len(r.views))
	for _, m := range r.views {
		out = append(out, ViewEntry{Key: m.Key, Ref: r.refs[m.Target]})
	}

	return out
}

// View looks up a view container by its key ("landing", "login", "upload",
// "reader"). ok is false for an unknown key; an absent element for a known
// key comes back as an empty Ref with ok true.
func (r *Registry) View(key string) (dom.Ref, bool) {
	for _, m := range r.views {
		if m.Key == key {
			return r.refs[m.Target], true
		}
	}

	return dom.None(), false
}

// Names lists every binding in table order.
func (r *Registry) Names() []Name {
	out := make([]Name, len(r.names))
	copy(out, r.names)

	return out
}

// Missing lists the by-id bindings whose element was not found, in table
// order.
func (r *Registry) Missing() []Name {
	var out []Name
	for _, n := range r.names {
		ref, ok := r.refs[n]
		if ok && !ref.Present() {
			out = append(out, n)
		}
	}

	return out
}

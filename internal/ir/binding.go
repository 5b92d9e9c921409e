package ir

import (
	"sort"

	"wasmir/internal/diag"
	"wasmir/internal/source"
)

// Binding records where a name was declared and which index it binds.
type Binding struct {
	Loc   source.Loc
	Index Index
}

// BindingHash maps names to bindings within one namespace of one
// module. It is a multimap: duplicate declarations are retained, in
// first-insertion order, so a later scan can report both locations.
// Empty names denote "no name" and are never inserted.
type BindingHash map[string][]Binding

// Bind appends a binding for name. Binding an empty name is a no-op.
func (h BindingHash) Bind(name string, b Binding) {
	if name == "" {
		return
	}
	h[name] = append(h[name], b)
}

// Find returns the first-inserted binding for name.
func (h BindingHash) Find(name string) (Binding, bool) {
	bs, ok := h[name]
	if !ok || len(bs) == 0 {
		return Binding{}, false
	}
	return bs[0], true
}

// FindIndex resolves name to its bound index, or InvalidIndex.
func (h BindingHash) FindIndex(name string) Index {
	if b, ok := h.Find(name); ok {
		return b.Index
	}
	return InvalidIndex
}

// CheckDuplicates reports every name bound more than once. Storage
// permits duplicates precisely so this scan can point at all
// declaration sites; kind names the namespace in the message.
func (h BindingHash) CheckDuplicates(kind string, bag *diag.Bag) {
	names := make([]string, 0, len(h))
	for name, bs := range h {
		if len(bs) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		bs := h[name]
		d := diag.Errorf(bs[len(bs)-1].Loc, "redefinition of %s %q", kind, name)
		for _, b := range bs[:len(bs)-1] {
			d.Notes = append(d.Notes, diag.Note{Loc: b.Loc, Msg: "previous definition here"})
		}
		bag.Add(d)
	}
}

// MakeReverseMapping produces out[i] = name-of-entity-at-index-i for
// count entities, with "" at unnamed indices. When several names bind
// one index the lexicographically first wins. Text formatters use this
// to print names instead of raw indices.
func (h BindingHash) MakeReverseMapping(count int) []string {
	out := make([]string, count)
	for name, bs := range h {
		for _, b := range bs {
			i := int(b.Index)
			if i < 0 || i >= count {
				continue
			}
			if out[i] == "" || name < out[i] {
				out[i] = name
			}
		}
	}
	return out
}

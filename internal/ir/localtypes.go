package ir

import "wasmir/internal/types"

// LocalTypeDecl is one run of equally-typed locals.
type LocalTypeDecl struct {
	Type  types.Type
	Count Index
}

// LocalTypes is a run-length-compressed sequence of local declarations,
// presenting iteration and indexed access over the expanded sequence.
// Every stored decl has Count > 0.
type LocalTypes struct {
	decls []LocalTypeDecl
}

// Decls exposes the raw runs, as the binary format writes them.
func (l *LocalTypes) Decls() []LocalTypeDecl { return l.decls }

// Set replaces the declarations with a run-length compression of v;
// consecutive equal types coalesce.
func (l *LocalTypes) Set(v types.Vector) {
	l.decls = l.decls[:0]
	for _, t := range v {
		if n := len(l.decls); n > 0 && l.decls[n-1].Type == t {
			l.decls[n-1].Count++
			continue
		}
		l.decls = append(l.decls, LocalTypeDecl{Type: t, Count: 1})
	}
}

// AppendDecl appends one run. Zero counts are dropped; adjacent equal
// types are kept as written, not coalesced.
func (l *LocalTypes) AppendDecl(t types.Type, count Index) {
	if count == 0 {
		return
	}
	l.decls = append(l.decls, LocalTypeDecl{Type: t, Count: count})
}

// Size is the expanded length, the sum of all run counts.
func (l *LocalTypes) Size() Index {
	var n Index
	for _, d := range l.decls {
		n += d.Count
	}
	return n
}

// At returns the i'th expanded type by scanning the runs; the second
// result is false when i is out of range.
func (l *LocalTypes) At(i Index) (types.Type, bool) {
	for _, d := range l.decls {
		if i < d.Count {
			return d.Type, true
		}
		i -= d.Count
	}
	return types.Void, false
}

// Each yields every type once per unit of count, in declaration order.
func (l *LocalTypes) Each(yield func(types.Type) bool) {
	for _, d := range l.decls {
		for i := Index(0); i < d.Count; i++ {
			if !yield(d.Type) {
				return
			}
		}
	}
}

package diag

import "sort"

// Bag aggregates diagnostics produced by one scan.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag { return &Bag{} }

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Len() int { return len(b.items) }

func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the diagnostics sorted by position, then message, so
// reports are deterministic regardless of scan order.
func (b *Bag) Items() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i].Primary, out[j].Primary
		if a.Filename != c.Filename {
			return a.Filename < c.Filename
		}
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		if a.FirstCol != c.FirstCol {
			return a.FirstCol < c.FirstCol
		}
		return out[i].Message < out[j].Message
	})
	return out
}

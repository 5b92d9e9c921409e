package source

import (
	"fmt"
)

// Loc is a source position attached to IR nodes. It is informational
// only and never participates in equality of the nodes that carry it.
type Loc struct {
	Filename string
	Line     int
	FirstCol int
	LastCol  int
}

func (l Loc) IsZero() bool {
	return l.Filename == "" && l.Line == 0 && l.FirstCol == 0 && l.LastCol == 0
}

func (l Loc) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.FirstCol)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.FirstCol)
}

// Cover widens l to include other, assuming both lie in the same file
// and on the same line ordering as written.
func (l Loc) Cover(other Loc) Loc {
	if l.Filename != other.Filename {
		return l
	}
	if other.Line < l.Line || (other.Line == l.Line && other.FirstCol < l.FirstCol) {
		l.Line = other.Line
		l.FirstCol = other.FirstCol
	}
	if other.LastCol > l.LastCol {
		l.LastCol = other.LastCol
	}
	return l
}

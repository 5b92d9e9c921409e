package types

import "fmt"

// Limits bounds a table or memory. Max is meaningful only when HasMax is
// set. Constructors never check Initial against Max; validators do.
type Limits struct {
	Initial  uint64
	Max      uint64
	HasMax   bool
	IsShared bool
	Is64     bool
}

func (l Limits) String() string {
	if l.HasMax {
		return fmt.Sprintf("%d..%d", l.Initial, l.Max)
	}
	return fmt.Sprintf("%d..", l.Initial)
}

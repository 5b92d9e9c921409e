// Package diag defines the diagnostic model shared by the IR scans and
// the CLI. It is data-only: rendering lives with the consumers.
package diag

import (
	"fmt"
	"strings"

	"wasmir/internal/source"
)

type Note struct {
	Loc source.Loc
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Message  string
	Primary  source.Loc
	Notes    []Note
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s", d.Primary, d.Severity, d.Message)
	for _, n := range d.Notes {
		fmt.Fprintf(&sb, "\n  %s: note: %s", n.Loc, n.Msg)
	}
	return sb.String()
}

func Errorf(loc source.Loc, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Message:  fmt.Sprintf(format, args...),
		Primary:  loc,
	}
}

package error

import (
	"fmt"
	"strings"
)

// SpecError represents an error in a grammar definition passed to the
// normalizer. Detail carries additional information like the kind of an
// offending node.
type SpecError struct {
	Cause  error
	Detail string
}

func (e *SpecError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	return b.String()
}

type SpecErrors []*SpecError

func (e SpecErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}

// InternalError represents a broken invariant detected by the normalizer
// itself. It always indicates a bug in a transformation pass, not in the
// grammar being processed.
type InternalError struct {
	Cause  error
	Detail string
}

func (e *InternalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("internal error: %v", e.Cause)
	}
	return fmt.Sprintf("internal error: %v: %v", e.Cause, e.Detail)
}

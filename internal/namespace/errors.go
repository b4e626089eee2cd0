package namespace

import (
	"fmt"
	"strings"
)

// Reason classifies an alignment failure.
type Reason int

const (
	// WrongNamespace: the declared namespace differs from the one the files live in.
	WrongNamespace Reason = iota + 1
	// MissingNamespace: the files live in a namespace but none was declared.
	MissingNamespace
	// NeedlessNamespace: a namespace was declared for files outside every namespace.
	NeedlessNamespace
	// MultipleNamespaces: the files span more than one namespace.
	MultipleNamespaces
)

// AlignmentError describes why a declared namespace does not fit the changed files.
type AlignmentError struct {
	Reason     Reason
	Dir        string
	Required   string
	Declared   string
	Namespaces []string
}

func (e *AlignmentError) Error() string {
	switch e.Reason {
	case WrongNamespace:
		return fmt.Sprintf("Files in %s require namespace %q, got %q", e.Dir, e.Required, e.Declared)
	case MissingNamespace:
		return fmt.Sprintf("Files in %s require namespace %q, but none was declared", e.Dir, e.Required)
	case NeedlessNamespace:
		return fmt.Sprintf("Namespace %q declared, but no changed files belong to a namespace", e.Declared)
	case MultipleNamespaces:
		return "Commit spans multiple namespaces: " + strings.Join(e.Namespaces, ", ")
	}
	return "namespace alignment failed"
}

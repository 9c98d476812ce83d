// Package schema extracts the generator's model from a parsed declaration
// file: one ActionDescriptor per interface declaration, in source order,
// plus the import statements to re-emit verbatim ahead of generated code.
package schema

import (
	"fmt"

	"github.com/actionplatform/actiongen/pkg/annotation"
)

type (
	// Field is one property of a record. Type is the declared TypeScript
	// type, carried as opaque text and never interpreted.
	Field struct {
		Name     string
		Type     string
		Optional bool
	}

	// ActionDescriptor is the extracted model of one record declaration.
	// Field and annotation order follow declaration order; every generated
	// identifier for the record derives from Name alone.
	ActionDescriptor struct {
		Name        string
		Fields      []Field
		Annotations []annotation.Annotation
	}

	// Schema is the result of extracting one declaration file.
	Schema struct {
		Actions []ActionDescriptor
		// Imports holds the file's import statements verbatim, in source
		// order. They are pass-through data for the emitter, not part of
		// the action model.
		Imports []string
	}
)

// Pos is a zero-based source position.
type Pos struct {
	Row    uint32
	Column uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Column+1)
}

// UnrenderableTypeError reports a record member whose declared type could not
// be rendered as text, usually because the declaration did not parse cleanly.
type UnrenderableTypeError struct {
	Record string
	Member string
	Pos    Pos
}

func (err *UnrenderableTypeError) Error() string {
	return fmt.Sprintf("%s: cannot render type of %s.%s", err.Pos, err.Record, err.Member)
}

// DuplicateRecordError reports two record declarations sharing one name.
// Generated identifiers derive from record names, so a duplicate would make
// one record silently shadow the other; the run is rejected instead.
type DuplicateRecordError struct {
	Name   string
	First  Pos
	Second Pos
}

func (err *DuplicateRecordError) Error() string {
	return fmt.Sprintf("%s: duplicate record %s (first declared at %s)", err.Second, err.Name, err.First)
}

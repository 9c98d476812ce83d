// Package annotation parses the documentation tags attached to a record
// declaration. A tag has the shape `@name [argument]`, where the optional
// argument is a single JSON value; everything between one tag and the next
// belongs to the first tag's argument text.
package annotation

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

type Annotation struct {
	Name string
	Arg  any
}

// MalformedTagError reports a tag whose argument text is not a valid JSON
// value. It is fatal for the run; the parser never substitutes a default for
// a malformed argument.
type MalformedTagError struct {
	Tag   string
	Text  string
	Cause error
}

func (err *MalformedTagError) Error() string {
	return fmt.Sprintf("malformed argument for tag @%s: %v", err.Tag, err.Cause)
}

func (err *MalformedTagError) Unwrap() error {
	return err.Cause
}

var tagStartRegex = regexp.MustCompile(`@(\w+)`)

// Parse extracts every `@name [argument]` tag from a preprocessed comment
// block, in source order. A tag with no argument text gets the argument
// `true`. Argument values are decoded with [json.Decoder.UseNumber] so that
// numeric arguments survive a round trip through the generator unchanged.
func Parse(comment string) ([]Annotation, error) {
	submatches := tagStartRegex.FindAllStringSubmatchIndex(comment, -1)
	var annotations []Annotation
	for i, submatch := range submatches {
		name := comment[submatch[2]:submatch[3]]

		argEnd := len(comment)
		if i+1 < len(submatches) {
			argEnd = submatches[i+1][0]
		}
		argText := strings.TrimSpace(comment[submatch[1]:argEnd])

		arg, err := parseArg(argText)
		if err != nil {
			return nil, &MalformedTagError{Tag: name, Text: argText, Cause: err}
		}
		annotations = append(annotations, Annotation{Name: name, Arg: arg})
	}
	return annotations, nil
}

func parseArg(argText string) (any, error) {
	if argText == "" {
		return true, nil
	}
	dec := json.NewDecoder(strings.NewReader(argText))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// a tag argument is exactly one JSON value
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON value")
	}
	return v, nil
}

package ident

import (
	"strings"
	"unicode"
)

// Segments splits a camel- or Pascal-cased identifier at each uppercase-letter
// boundary. A run of consecutive uppercase letters stays a single segment that
// starts at the run's first letter, so "goToThing" yields ["go" "To" "Thing"]
// and "parseHTTPRequest" yields ["parse" "HTTPRequest"].
//
// Every case transform in this package is built on this one rule, which keeps
// the derived constant, sentence, and constructor forms of a name consistent
// with each other.
func Segments(name string) []string {
	if name == "" {
		return nil
	}
	var segments []string
	runes := []rune(name)
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			segments = append(segments, string(runes[start:i]))
			start = i
		}
	}
	return append(segments, string(runes[start:]))
}

// ToConstantCase renders a record name as an enum constant identifier:
// "goToThing" becomes "GO_TO_THING".
func ToConstantCase(name string) string {
	segments := Segments(name)
	for i, s := range segments {
		segments[i] = strings.ToUpper(s)
	}
	return strings.Join(segments, "_")
}

// ToSentence renders a record name as a lowercase sentence:
// "goToThing" becomes "go to thing".
func ToSentence(name string) string {
	segments := Segments(name)
	for i, s := range segments {
		segments[i] = strings.ToLower(s)
	}
	return strings.Join(segments, " ")
}

// Uncapitalize lowercases only the first character, leaving the rest of the
// name untouched: "GoToThing" becomes "goToThing". Constructor function names
// are derived from record names this way.
func Uncapitalize(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// pkg/charset/charset.go

// Package charset holds the fixed character-class alphabets shared by the
// generator and the strength evaluator.
package charset

import (
	"fmt"
	"strings"
)

// Class tags one of the four fixed alphabets.
type Class uint8

const (
	Lowercase Class = iota
	Uppercase
	Digit
	Special
)

// All lists every class in enumeration order. Required-character draws and
// pool assembly follow this order.
var All = [...]Class{Lowercase, Uppercase, Digit, Special}

const (
	lowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	uppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet     = "0123456789"
	specialAlphabet   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// AmbiguousChars are the glyphs commonly confused with one another.
	AmbiguousChars = "il1Lo0O"
)

var alphabets = [...]string{
	Lowercase: lowercaseAlphabet,
	Uppercase: uppercaseAlphabet,
	Digit:     digitAlphabet,
	Special:   specialAlphabet,
}

var classNames = [...]string{
	Lowercase: "lowercase",
	Uppercase: "uppercase",
	Digit:     "digit",
	Special:   "special",
}

// String returns the lowercase name of the class.
func (c Class) String() string {
	if !c.valid() {
		return fmt.Sprintf("class(%d)", uint8(c))
	}
	return classNames[c]
}

func (c Class) valid() bool {
	return c <= Special
}

// Alphabet returns a copy of the class's base alphabet.
func (c Class) Alphabet() []rune {
	if !c.valid() {
		return nil
	}
	return []rune(alphabets[c])
}

// Effective returns the alphabet the generator draws from. With
// excludeAmbiguous set the ambiguous glyphs are filtered out of a fresh
// copy; the base table is never touched.
func (c Class) Effective(excludeAmbiguous bool) []rune {
	if !excludeAmbiguous {
		return c.Alphabet()
	}
	if !c.valid() {
		return nil
	}
	out := make([]rune, 0, len(alphabets[c]))
	for _, r := range alphabets[c] {
		if !IsAmbiguous(r) {
			out = append(out, r)
		}
	}
	return out
}

// Contains reports whether r belongs to the class. The test is case-sensitive.
func (c Class) Contains(r rune) bool {
	if !c.valid() {
		return false
	}
	return strings.ContainsRune(alphabets[c], r)
}

// ClassOf returns the class r belongs to, if any.
func ClassOf(r rune) (Class, bool) {
	for _, c := range All {
		if c.Contains(r) {
			return c, true
		}
	}
	return 0, false
}

// IsAmbiguous reports whether r is one of AmbiguousChars.
func IsAmbiguous(r rune) bool {
	return strings.ContainsRune(AmbiguousChars, r)
}

// ParseClass accepts the canonical class names plus a few short aliases.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowercase", "lower":
		return Lowercase, nil
	case "uppercase", "upper":
		return Uppercase, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	case "special", "symbol", "symbols":
		return Special, nil
	}
	return 0, fmt.Errorf("unknown character class %q", s)
}

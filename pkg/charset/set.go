// pkg/charset/set.go

package charset

import "strings"

// Set is a set of classes. The zero value is empty.
type Set uint8

// AllClasses has every class enabled.
const AllClasses Set = 1<<Lowercase | 1<<Uppercase | 1<<Digit | 1<<Special

// NewSet builds a set from the given classes.
func NewSet(classes ...Class) Set {
	var s Set
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s with c enabled.
func (s Set) With(c Class) Set {
	if !c.valid() {
		return s
	}
	return s | 1<<c
}

// Has reports whether c is enabled.
func (s Set) Has(c Class) bool {
	return c.valid() && s&(1<<c) != 0
}

// Empty reports whether no class is enabled.
func (s Set) Empty() bool {
	return s&AllClasses == 0
}

// Len returns the number of enabled classes.
func (s Set) Len() int {
	n := 0
	for _, c := range All {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Classes returns the enabled classes in enumeration order.
func (s Set) Classes() []Class {
	out := make([]Class, 0, len(All))
	for _, c := range All {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	if s.Empty() {
		return "none"
	}
	names := make([]string, 0, len(All))
	for _, c := range s.Classes() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// ParseSet parses a comma-separated list of class names, e.g.
// "lower,upper,digit". An empty string yields an empty set.
func ParseSet(s string) (Set, error) {
	var set Set
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		c, err := ParseClass(field)
		if err != nil {
			return 0, err
		}
		set = set.With(c)
	}
	return set, nil
}

// MarshalText renders the set as a comma-separated class list.
func (s Set) MarshalText() ([]byte, error) {
	if s.Empty() {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Set) UnmarshalText(text []byte) error {
	parsed, err := ParseSet(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

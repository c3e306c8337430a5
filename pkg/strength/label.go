// pkg/strength/label.go

package strength

import (
	"fmt"
	"strings"
)

// Label is the qualitative band of a score.
type Label int

const (
	VeryWeak Label = iota
	Weak
	Medium
	Strong
	VeryStrong
)

// Lower bounds, checked from the top down.
const (
	thresholdVeryStrong = 80
	thresholdStrong     = 60
	thresholdMedium     = 40
	thresholdWeak       = 20
)

var labelNames = [...]string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Medium:     "Medium",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// Advisory display colours, named the way the text renderer understands them.
var labelColors = [...]string{
	VeryWeak:   "darkred",
	Weak:       "red",
	Medium:     "orange",
	Strong:     "blue",
	VeryStrong: "green",
}

// LabelFor maps a score to its band.
func LabelFor(score int) Label {
	switch {
	case score >= thresholdVeryStrong:
		return VeryStrong
	case score >= thresholdStrong:
		return Strong
	case score >= thresholdMedium:
		return Medium
	case score >= thresholdWeak:
		return Weak
	default:
		return VeryWeak
	}
}

func (l Label) valid() bool {
	return l >= VeryWeak && l <= VeryStrong
}

func (l Label) String() string {
	if !l.valid() {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// Color returns the advisory display colour for the label.
func (l Label) Color() string {
	if !l.valid() {
		return ""
	}
	return labelColors[l]
}

// MarshalText renders the label name, e.g. "Very Strong".
func (l Label) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("invalid strength label %d", int(l))
	}
	return []byte(labelNames[l]), nil
}

// UnmarshalText accepts the label name case-insensitively, with or without
// the space.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLabel is the inverse of String.
func ParseLabel(s string) (Label, error) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	for i, name := range labelNames {
		if strings.ReplaceAll(strings.ToLower(name), " ", "") == want {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strength label %q", s)
}

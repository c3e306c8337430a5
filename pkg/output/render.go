// pkg/output/render.go

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/history"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/strength"
	"github.com/charmbracelet/lipgloss"
)

// Palette for the advisory strength colours.
var labelPalette = map[string]lipgloss.Color{
	"darkred": lipgloss.Color("#8b0000"),
	"red":     lipgloss.Color("#ff0000"),
	"orange":  lipgloss.Color("#ffaa00"),
	"blue":    lipgloss.Color("#0099ff"),
	"green":   lipgloss.Color("#00ff00"),
}

// Generated is one produced secret, with its evaluation when requested.
type Generated struct {
	Kind     string           `json:"kind" yaml:"kind"`
	Secret   string           `json:"secret" yaml:"secret"`
	Strength *strength.Report `json:"strength,omitempty" yaml:"strength,omitempty"`
}

// Renderer writes results in one format.
type Renderer struct {
	w        io.Writer
	format   Format
	color    bool
	renderer *lipgloss.Renderer
}

// New returns a renderer for w. Colour is applied only in text format and
// only when w is a terminal that supports it.
func New(w io.Writer, format Format, color bool) *Renderer {
	return &Renderer{
		w:        w,
		format:   format,
		color:    color,
		renderer: lipgloss.NewRenderer(w),
	}
}

func (r *Renderer) Format() Format { return r.format }

// Generated writes secrets. Text format prints one secret per line so the
// output can be piped, followed by an indented strength line when present.
func (r *Renderer) Generated(results []Generated) error {
	switch r.format {
	case FormatJSON:
		return JSONTo(r.w, results)
	case FormatYAML:
		return YAMLTo(r.w, results)
	}

	var b strings.Builder
	for _, g := range results {
		b.WriteString(g.Secret)
		b.WriteByte('\n')
		if g.Strength != nil {
			fmt.Fprintf(&b, "  strength: %s (%d/%d)\n",
				r.label(g.Strength.Label), g.Strength.Score, strength.MaxScore)
		}
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Entries writes annotated secrets; text format is a table.
func (r *Renderer) Entries(entries []history.Entry) error {
	switch r.format {
	case FormatJSON:
		return JSONTo(r.w, entries)
	case FormatYAML:
		return YAMLTo(r.w, entries)
	}

	t := NewTable("SECRET", "STRENGTH", "CREATED", "DESCRIPTION", "ID")
	for _, e := range entries {
		t.Row(e.Secret, e.Label.String(), e.CreatedAt.Format(history.TimestampLayout), e.Description, e.ID.String())
	}
	_, err := t.WriteTo(r.w)
	return err
}

// Report writes one strength evaluation.
func (r *Renderer) Report(rep strength.Report) error {
	switch r.format {
	case FormatJSON:
		return JSONTo(r.w, rep)
	case FormatYAML:
		return YAMLTo(r.w, rep)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Strength: %s\n", r.label(rep.Label))
	fmt.Fprintf(&b, "Score:    %d/%d\n", rep.Score, strength.MaxScore)
	fmt.Fprintf(&b, "Length:   %d\n", rep.Length)
	fmt.Fprintf(&b, "Classes:  %s\n", classSummary(rep))
	b.WriteString("Feedback:\n")
	for _, f := range rep.Feedback {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) label(l strength.Label) string {
	if !r.color {
		return l.String()
	}
	c, ok := labelPalette[l.Color()]
	if !ok {
		return l.String()
	}
	return r.renderer.NewStyle().Foreground(c).Bold(true).Render(l.String())
}

func classSummary(rep strength.Report) string {
	var present []string
	for _, c := range []struct {
		name string
		ok   bool
	}{
		{"lowercase", rep.HasLowercase},
		{"uppercase", rep.HasUppercase},
		{"digit", rep.HasDigit},
		{"special", rep.HasSpecial},
	} {
		if c.ok {
			present = append(present, c.name)
		}
	}
	if len(present) == 0 {
		return "none"
	}
	return strings.Join(present, ", ")
}

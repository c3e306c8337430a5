// pkg/crypto/generator.go

package crypto

import (
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
)

// MinLength is the shortest password Generate will produce.
const MinLength = 4

// GenerationRequest describes one password to generate.
type GenerationRequest struct {
	Length           int         `json:"length" yaml:"length"`
	Classes          charset.Set `json:"classes" yaml:"classes"`
	ExcludeAmbiguous bool        `json:"exclude_ambiguous" yaml:"exclude_ambiguous"`
	// ExtraChars are added to the filler pool as-is: no ambiguous filter
	// and no guaranteed occurrence.
	ExtraChars string `json:"extra_chars,omitempty" yaml:"extra_chars,omitempty"`
}

// Validate checks the request without drawing any randomness.
func (r GenerationRequest) Validate() error {
	if r.Length < MinLength {
		return ks_err.InvalidRequest(
			"password length must be at least 4 characters",
			"Pass --length 4 or more",
		)
	}
	if r.Classes.Empty() && r.ExtraChars == "" {
		return ks_err.InvalidRequest(
			"no character source selected",
			"Enable at least one class with --classes or supply --extra characters",
		)
	}
	return nil
}

// Generator composes secrets from a RandomSource. It holds no other state
// and is safe for concurrent use when its source is.
type Generator struct {
	rand RandomSource
}

// New returns a Generator drawing from src; a nil src means SecureSource.
func New(src RandomSource) *Generator {
	if src == nil {
		src = SecureSource{}
	}
	return &Generator{rand: src}
}

// NewSecure returns a Generator backed by crypto/rand.
func NewSecure() *Generator {
	return New(SecureSource{})
}

var defaultGenerator = NewSecure()

// Generate builds a password for req using crypto/rand.
func Generate(req GenerationRequest) (string, error) {
	return defaultGenerator.Generate(req)
}

// Generate builds a password of exactly req.Length characters containing at
// least one character from each enabled class.
//
// Required characters are drawn first, one per class in enumeration order;
// the rest come uniformly from the whole pool, so larger alphabets are
// proportionally more frequent. The arena is then shuffled.
func (g *Generator) Generate(req GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	required, pool, err := plan(req)
	if err != nil {
		return "", err
	}

	arena, err := g.compose(required, pool, req.Length)
	if err != nil {
		return "", err
	}
	return string(arena), nil
}

// plan resolves the per-class effective alphabets and the filler pool.
func plan(req GenerationRequest) ([][]rune, []rune, error) {
	var (
		required [][]rune
		pool     []rune
	)
	for _, class := range req.Classes.Classes() {
		alphabet := class.Effective(req.ExcludeAmbiguous)
		if len(alphabet) == 0 {
			return nil, nil, ks_err.InvalidRequestf(
				"%s alphabet is empty after excluding ambiguous characters", class)
		}
		required = append(required, alphabet)
		pool = append(pool, alphabet...)
	}
	pool = append(pool, []rune(req.ExtraChars)...)

	if len(pool) == 0 {
		return nil, nil, ks_err.InvalidRequest("character pool is empty")
	}
	return required, pool, nil
}

// compose fills an arena of length runes: one draw per required alphabet,
// then pool filler, then a Fisher–Yates pass. When length is smaller than
// the number of required alphabets only the first length of them are drawn.
func (g *Generator) compose(required [][]rune, pool []rune, length int) ([]rune, error) {
	n := min(length, len(required))
	arena := make([]rune, 0, length)

	for _, alphabet := range required[:n] {
		r, err := Choose(g.rand, alphabet)
		if err != nil {
			return nil, err
		}
		arena = append(arena, r)
	}

	for len(arena) < length {
		r, err := Choose(g.rand, pool)
		if err != nil {
			return nil, err
		}
		arena = append(arena, r)
	}

	if err := Shuffle(g.rand, arena); err != nil {
		return nil, err
	}
	return arena, nil
}

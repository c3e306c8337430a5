// pkg/crypto/presets.go

package crypto

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
)

// Preset is a fixed composition policy.
type Preset int

const (
	// PresetEasy is lowercase + digits without ambiguous glyphs; easy to type.
	PresetEasy Preset = iota + 1
	// PresetMedium is mixed-case letters + digits.
	PresetMedium
	// PresetStrong uses every class.
	PresetStrong
)

type presetPolicy struct {
	name             string
	classes          charset.Set
	excludeAmbiguous bool
	defaultLength    int
}

var presetPolicies = map[Preset]presetPolicy{
	PresetEasy: {
		name:             "easy",
		classes:          charset.NewSet(charset.Lowercase, charset.Digit),
		excludeAmbiguous: true,
		defaultLength:    12,
	},
	PresetMedium: {
		name:          "medium",
		classes:       charset.NewSet(charset.Lowercase, charset.Uppercase, charset.Digit),
		defaultLength: 12,
	},
	PresetStrong: {
		name:          "strong",
		classes:       charset.AllClasses,
		defaultLength: 16,
	},
}

func (p Preset) String() string {
	if policy, ok := presetPolicies[p]; ok {
		return policy.name
	}
	return "custom"
}

// DefaultLength is the length used when the caller does not pick one.
func (p Preset) DefaultLength() int {
	return presetPolicies[p].defaultLength
}

// Request builds the preset's request. length <= 0 selects DefaultLength.
func (p Preset) Request(length int) (GenerationRequest, error) {
	policy, ok := presetPolicies[p]
	if !ok {
		return GenerationRequest{}, ks_err.InvalidRequestf("unknown preset %d", int(p))
	}
	if length <= 0 {
		length = policy.defaultLength
	}
	return GenerationRequest{
		Length:           length,
		Classes:          policy.classes,
		ExcludeAmbiguous: policy.excludeAmbiguous,
	}, nil
}

// ParsePreset maps "easy", "medium" or "strong" to a Preset.
func ParsePreset(name string) (Preset, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for p, policy := range presetPolicies {
		if policy.name == want {
			return p, nil
		}
	}
	return 0, ks_err.InvalidRequest(
		"unknown preset "+strings.TrimSpace(name),
		"Use one of: easy, medium, strong",
	)
}

// GeneratePreset generates a password under preset p.
func (g *Generator) GeneratePreset(p Preset, length int) (string, error) {
	req, err := p.Request(length)
	if err != nil {
		return "", err
	}
	return g.Generate(req)
}

// GenerateEasy returns a lowercase+digit password with no ambiguous glyphs.
func (g *Generator) GenerateEasy(length int) (string, error) {
	return g.GeneratePreset(PresetEasy, length)
}

// GenerateMedium returns a mixed-case alphanumeric password.
func (g *Generator) GenerateMedium(length int) (string, error) {
	return g.GeneratePreset(PresetMedium, length)
}

// GenerateStrong returns a password drawn from every class.
func (g *Generator) GenerateStrong(length int) (string, error) {
	return g.GeneratePreset(PresetStrong, length)
}

func GenerateEasy(length int) (string, error)   { return defaultGenerator.GenerateEasy(length) }
func GenerateMedium(length int) (string, error) { return defaultGenerator.GenerateMedium(length) }
func GenerateStrong(length int) (string, error) { return defaultGenerator.GenerateStrong(length) }

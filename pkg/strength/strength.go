// pkg/strength/strength.go

// Package strength scores secrets against a fixed additive rubric. Scoring
// is pure: the same input always yields the same Report.
package strength

import (
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
)

// Rubric points.
const (
	pointsLength16 = 30
	pointsLength12 = 20
	pointsLength8  = 10

	pointsLowercase = 10
	pointsUppercase = 15
	pointsDigit     = 15
	pointsSpecial   = 20
	pointsAllBonus  = 10

	// MaxScore is the highest attainable score.
	MaxScore = pointsLength16 + pointsLowercase + pointsUppercase + pointsDigit + pointsSpecial + pointsAllBonus

	// RecommendedLength is the length below which feedback asks for more.
	RecommendedLength = 12
)

// Feedback messages, in the order they are emitted.
const (
	FeedbackLength    = "use at least 12 characters"
	FeedbackLowercase = "Add lowercase letters"
	FeedbackUppercase = "Add uppercase letters"
	FeedbackDigit     = "Add numbers"
	FeedbackSpecial   = "Add special characters"
	FeedbackExcellent = "Excellent! This is a strong password"
)

// Report is the evaluation of one secret.
type Report struct {
	Score        int      `json:"score" yaml:"score"`
	Label        Label    `json:"label" yaml:"label"`
	Length       int      `json:"length" yaml:"length"`
	HasLowercase bool     `json:"has_lowercase" yaml:"has_lowercase"`
	HasUppercase bool     `json:"has_uppercase" yaml:"has_uppercase"`
	HasDigit     bool     `json:"has_digit" yaml:"has_digit"`
	HasSpecial   bool     `json:"has_special" yaml:"has_special"`
	Feedback     []string `json:"feedback" yaml:"feedback"`
}

// AllClasses reports whether every class is present.
func (r Report) AllClasses() bool {
	return r.HasLowercase && r.HasUppercase && r.HasDigit && r.HasSpecial
}

// Evaluate scores secret. Length counts characters, not bytes; characters
// outside the four alphabets add length but no class.
func Evaluate(secret string) (Report, error) {
	if secret == "" {
		return Report{}, ks_err.InvalidInput(
			"secret must not be empty",
			"Pass the secret as an argument or on stdin",
		)
	}

	r := Report{Length: utf8.RuneCountInString(secret)}
	for _, c := range secret {
		class, ok := charset.ClassOf(c)
		if !ok {
			continue
		}
		switch class {
		case charset.Lowercase:
			r.HasLowercase = true
		case charset.Uppercase:
			r.HasUppercase = true
		case charset.Digit:
			r.HasDigit = true
		case charset.Special:
			r.HasSpecial = true
		}
	}

	r.Score = score(r)
	r.Label = LabelFor(r.Score)
	r.Feedback = feedback(r)
	return r, nil
}

func score(r Report) int {
	s := 0
	switch {
	case r.Length >= 16:
		s += pointsLength16
	case r.Length >= 12:
		s += pointsLength12
	case r.Length >= 8:
		s += pointsLength8
	}
	if r.HasLowercase {
		s += pointsLowercase
	}
	if r.HasUppercase {
		s += pointsUppercase
	}
	if r.HasDigit {
		s += pointsDigit
	}
	if r.HasSpecial {
		s += pointsSpecial
	}
	if r.AllClasses() {
		s += pointsAllBonus
	}
	return s
}

func feedback(r Report) []string {
	var out []string
	if r.Length < RecommendedLength {
		out = append(out, FeedbackLength)
	}
	if !r.HasLowercase {
		out = append(out, FeedbackLowercase)
	}
	if !r.HasUppercase {
		out = append(out, FeedbackUppercase)
	}
	if !r.HasDigit {
		out = append(out, FeedbackDigit)
	}
	if !r.HasSpecial {
		out = append(out, FeedbackSpecial)
	}
	if len(out) == 0 {
		return []string{FeedbackExcellent}
	}
	return out
}

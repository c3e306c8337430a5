// pkg/crypto/pin.go

package crypto

import (
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
)

// MinPINLength is the shortest PIN GeneratePIN will produce.
const MinPINLength = 4

// GeneratePIN returns length independent uniform digits.
func GeneratePIN(length int) (string, error) {
	return defaultGenerator.GeneratePIN(length)
}

// GeneratePIN returns length independent uniform digits. Draws are already
// independent, so there is no coverage step and no shuffle.
func (g *Generator) GeneratePIN(length int) (string, error) {
	if length < MinPINLength {
		return "", ks_err.InvalidRequest(
			"PIN length must be at least 4 digits",
			"Pass --length 4 or more",
		)
	}

	digits := charset.Digit.Alphabet()
	pin := make([]rune, length)
	for i := range pin {
		d, err := Choose(g.rand, digits)
		if err != nil {
			return "", err
		}
		pin[i] = d
	}
	return string(pin), nil
}

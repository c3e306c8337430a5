// pkg/crypto/batch.go

package crypto

import (
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
)

// MaxBatch caps GenerateMany to bound caller-induced work.
const MaxBatch = 50

// GenerateMany returns count independently generated passwords.
func GenerateMany(count int, req GenerationRequest) ([]string, error) {
	return defaultGenerator.GenerateMany(count, req)
}

// GenerateMany runs Generate count times. Either every secret is returned
// or none is.
func (g *Generator) GenerateMany(count int, req GenerationRequest) ([]string, error) {
	if count < 1 || count > MaxBatch {
		return nil, ks_err.InvalidRequest(
			"count must be between 1 and 50",
			"Generate at most 50 passwords at once",
		)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for range count {
		pw, err := g.Generate(req)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

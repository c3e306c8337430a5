// pkg/crypto/passphrase.go

package crypto

import (
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultPassphraseWords is the word count used by the CLI by default.
	DefaultPassphraseWords = 4
	// DefaultSeparator joins passphrase tokens by default.
	DefaultSeparator = "-"
	// passphraseNumberBound is the exclusive upper bound of the trailing number.
	passphraseNumberBound = 100
)

// wordList is the passphrase vocabulary. Order is irrelevant; size and
// membership are fixed.
var wordList = [...]string{
	"apple", "banana", "cherry", "dragon", "elephant", "forest", "garden",
	"happy", "island", "jungle", "kitten", "lemon", "mountain", "ninja",
	"ocean", "panda", "queen", "rabbit", "sunset", "tiger", "umbrella",
	"valley", "wizard", "yellow", "zebra", "anchor", "bridge", "castle",
	"diamond", "eagle", "flame", "galaxy", "hammer", "igloo", "jasper",
	"knight", "lantern", "marble", "nectar", "oasis", "puzzle", "quartz",
	"rocket", "shadow", "thunder", "universe", "victory", "wonder", "xenon",
}

// WordListSize is the number of distinct passphrase words.
const WordListSize = len(wordList)

// titledWords holds the capitalised forms, built once at start-up and
// never written again.
var titledWords = func() []string {
	caser := cases.Title(language.Und)
	out := make([]string, len(wordList))
	for i, w := range wordList {
		out[i] = caser.String(w)
	}
	return out
}()

// WordList returns a copy of the passphrase vocabulary in lowercase.
func WordList() []string {
	return append([]string(nil), wordList[:]...)
}

// GeneratePassphrase joins wordCount capitalised words and a number in
// [0,100) with separator.
func GeneratePassphrase(wordCount int, separator string) (string, error) {
	return defaultGenerator.GeneratePassphrase(wordCount, separator)
}

// GeneratePassphrase draws wordCount words with replacement, appends one
// uniform integer in [0,100) and joins the wordCount+1 tokens with separator.
func (g *Generator) GeneratePassphrase(wordCount int, separator string) (string, error) {
	if wordCount < 1 {
		return "", ks_err.InvalidRequest(
			"passphrase needs at least one word",
			"Pass --words 1 or more",
		)
	}
	if separator == "" {
		return "", ks_err.InvalidRequest(
			"passphrase separator must not be empty",
			"Pass --separator, for example '-'",
		)
	}

	tokens := make([]string, 0, wordCount+1)
	for range wordCount {
		w, err := Choose(g.rand, titledWords)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, w)
	}

	n, err := g.rand.Intn(passphraseNumberBound)
	if err != nil {
		return "", err
	}
	tokens = append(tokens, strconv.Itoa(n))

	return strings.Join(tokens, separator), nil
}

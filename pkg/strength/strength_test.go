package strength

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		secret    string
		wantScore int
		wantLabel Label
		feedback  []string
	}{
		{
			name:      "sixteen_lowercase",
			secret:    "aaaaaaaaaaaaaaaa",
			wantScore: 40,
			wantLabel: Medium,
			feedback:  []string{FeedbackUppercase, FeedbackDigit, FeedbackSpecial},
		},
		{
			name:      "twelve_all_classes",
			secret:    "Aa1!Aa1!Aa1!",
			wantScore: 90,
			wantLabel: VeryStrong,
			feedback:  []string{FeedbackExcellent},
		},
		{
			name:      "max_score",
			secret:    "Aa1!Aa1!Aa1!Aa1!",
			wantScore: 100,
			wantLabel: VeryStrong,
			feedback:  []string{FeedbackExcellent},
		},
		{
			name:      "single_digit",
			secret:    "7",
			wantScore: 15,
			wantLabel: VeryWeak,
			feedback:  []string{FeedbackLength, FeedbackLowercase, FeedbackUppercase, FeedbackSpecial},
		},
		{
			name:      "eight_mixed_letters",
			secret:    "abcdEFGH",
			wantScore: 35,
			wantLabel: Weak,
			feedback:  []string{FeedbackLength, FeedbackDigit, FeedbackSpecial},
		},
		{
			name:      "twelve_alnum",
			secret:    "abcdEFGH1234",
			wantScore: 60,
			wantLabel: Strong,
			feedback:  []string{FeedbackSpecial},
		},
		{
			name:      "seven_all_classes",
			secret:    "aA1!bB2",
			wantScore: 70,
			wantLabel: Strong,
			feedback:  []string{FeedbackLength},
		},
		{
			name:      "only_unrecognised_characters",
			secret:    "ééééééééééééé",
			wantScore: 20,
			wantLabel: Weak,
			feedback:  []string{FeedbackLowercase, FeedbackUppercase, FeedbackDigit, FeedbackSpecial},
		},
		{
			name:      "spaces_are_not_special",
			secret:    "a b",
			wantScore: 10,
			wantLabel: VeryWeak,
			feedback:  []string{FeedbackLength, FeedbackUppercase, FeedbackDigit, FeedbackSpecial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := Evaluate(tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, r.Score)
			assert.Equal(t, tt.wantLabel, r.Label)
			assert.Equal(t, tt.feedback, r.Feedback)
		})
	}
}

func TestFeedbackLengthText(t *testing.T) {
	t.Parallel()
	r, err := Evaluate("Aa1!")
	require.NoError(t, err)
	assert.Equal(t, []string{"use at least 12 characters"}, r.Feedback)
}

func TestEvaluateClassFlags(t *testing.T) {
	t.Parallel()
	r, err := Evaluate("Aa1!Aa1!Aa1!")
	require.NoError(t, err)
	assert.Equal(t, Report{
		Score:        90,
		Label:        VeryStrong,
		Length:       12,
		HasLowercase: true,
		HasUppercase: true,
		HasDigit:     true,
		HasSpecial:   true,
		Feedback:     []string{FeedbackExcellent},
	}, r)
}

func TestEvaluateCountsCharactersNotBytes(t *testing.T) {
	t.Parallel()
	r, err := Evaluate("ü")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Length)
}

func TestEvaluateEmpty(t *testing.T) {
	t.Parallel()
	_, err := Evaluate("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ks_err.ErrInvalidInput))
}

func TestEvaluateDeterministic(t *testing.T) {
	t.Parallel()
	for range 20 {
		pw, err := crypto.GenerateStrong(0)
		require.NoError(t, err)
		a, err := Evaluate(pw)
		require.NoError(t, err)
		b, err := Evaluate(pw)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

// TestEvaluateBounds sweeps every combination of class presence and a
// spread of lengths: scores stay in [0, MaxScore] and adding a class never
// lowers the score.
func TestEvaluateBounds(t *testing.T) {
	t.Parallel()
	samples := []string{"a", "A", "1", "!"}
	for mask := 0; mask < 16; mask++ {
		for _, length := range []int{1, 7, 8, 11, 12, 15, 16, 40} {
			var parts []string
			for i, s := range samples {
				if mask&(1<<i) != 0 {
					parts = append(parts, s)
				}
			}
			if len(parts) == 0 {
				parts = []string{"é"}
			}
			secret := strings.Repeat(strings.Join(parts, ""), length/len(parts)+1)
			secret = string([]rune(secret)[:max(length, len(parts))])

			r, err := Evaluate(secret)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, r.Score, 0)
			assert.LessOrEqual(t, r.Score, MaxScore)
			assert.Equal(t, LabelFor(r.Score), r.Label)
			assert.NotEmpty(t, r.Feedback)

			withSpecial, err := Evaluate(secret + "!")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, withSpecial.Score, r.Score)
		}
	}
	assert.Equal(t, 100, MaxScore)
}

func TestLabelFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		score int
		want  Label
	}{
		{0, VeryWeak},
		{19, VeryWeak},
		{20, Weak},
		{39, Weak},
		{40, Medium},
		{59, Medium},
		{60, Strong},
		{79, Strong},
		{80, VeryStrong},
		{100, VeryStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.score), "score %d", tt.score)
	}
}

func TestLabelText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Very Strong", VeryStrong.String())
	assert.Equal(t, "green", VeryStrong.Color())
	assert.Equal(t, "darkred", VeryWeak.Color())

	for _, l := range []Label{VeryWeak, Weak, Medium, Strong, VeryStrong} {
		parsed, err := ParseLabel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	got, err := ParseLabel("verystrong")
	require.NoError(t, err)
	assert.Equal(t, VeryStrong, got)

	_, err = ParseLabel("meh")
	assert.Error(t, err)
	_, err = Label(9).MarshalText()
	assert.Error(t, err)
}

func TestReportJSON(t *testing.T) {
	t.Parallel()
	r, err := Evaluate("aaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label":"Medium"`)
	assert.Contains(t, string(data), `"score":40`)
}

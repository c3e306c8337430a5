package crypto

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/charset"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/crypto/mocks"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPresets(t *testing.T) {
	t.Parallel()
	tests := []struct {
		preset     Preset
		length     int
		wantLen    int
		classes    charset.Set
		noAmbig    bool
		forbidden  []charset.Class
		generateFn func(int) (string, error)
	}{
		{
			preset:     PresetEasy,
			wantLen:    12,
			classes:    charset.NewSet(charset.Lowercase, charset.Digit),
			noAmbig:    true,
			forbidden:  []charset.Class{charset.Uppercase, charset.Special},
			generateFn: GenerateEasy,
		},
		{
			preset:     PresetMedium,
			wantLen:    12,
			classes:    charset.NewSet(charset.Lowercase, charset.Uppercase, charset.Digit),
			forbidden:  []charset.Class{charset.Special},
			generateFn: GenerateMedium,
		},
		{
			preset:     PresetStrong,
			wantLen:    16,
			classes:    charset.AllClasses,
			generateFn: GenerateStrong,
		},
		{
			preset:     PresetStrong,
			length:     40,
			wantLen:    40,
			classes:    charset.AllClasses,
			generateFn: GenerateStrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String()+"_"+strconv.Itoa(tt.length), func(t *testing.T) {
			t.Parallel()
			for range 50 {
				pw, err := tt.generateFn(tt.length)
				require.NoError(t, err)
				assert.Len(t, pw, tt.wantLen)
				assertCovers(t, pw, tt.classes)
				if tt.noAmbig {
					assertNoAmbiguous(t, pw)
				}
				for _, r := range pw {
					for _, c := range tt.forbidden {
						assert.False(t, c.Contains(r), "%s preset produced %s rune %q", tt.preset, c, r)
					}
				}
			}
		})
	}
}

func TestPresetRequest(t *testing.T) {
	t.Parallel()
	req, err := PresetEasy.Request(0)
	require.NoError(t, err)
	assert.Equal(t, GenerationRequest{
		Length:           12,
		Classes:          charset.NewSet(charset.Lowercase, charset.Digit),
		ExcludeAmbiguous: true,
	}, req)

	_, err = Preset(99).Request(12)
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)

	_, err = GenerateMedium(3)
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
}

func TestParsePreset(t *testing.T) {
	t.Parallel()
	for name, want := range map[string]Preset{
		"easy":     PresetEasy,
		" Medium ": PresetMedium,
		"STRONG":   PresetStrong,
	} {
		got, err := ParsePreset(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := ParsePreset("paranoid")
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
	assert.Equal(t, "custom", Preset(0).String())
}

func TestGeneratePIN(t *testing.T) {
	t.Parallel()
	for _, n := range []int{4, 6, 8, 32} {
		pin, err := GeneratePIN(n)
		require.NoError(t, err)
		assert.Len(t, pin, n)
		for _, r := range pin {
			assert.True(t, unicode.IsDigit(r), "non-digit %q in PIN %q", r, pin)
		}
	}

	for _, n := range []int{3, 0, -1} {
		pin, err := GeneratePIN(n)
		assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
		assert.Empty(t, pin)
	}
}

func TestGeneratePINDraws(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	src := mocks.NewMockRandomSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Intn(10).Return(0, nil),
		src.EXPECT().Intn(10).Return(9, nil),
		src.EXPECT().Intn(10).Return(4, nil),
		src.EXPECT().Intn(10).Return(0, nil),
	)

	pin, err := New(src).GeneratePIN(4)
	require.NoError(t, err)
	assert.Equal(t, "0940", pin, "leading zeros are kept and no shuffle happens")
}

func TestGeneratePassphrase(t *testing.T) {
	t.Parallel()
	vocabulary := make(map[string]bool, WordListSize)
	for _, w := range WordList() {
		vocabulary[strings.ToUpper(w[:1])+w[1:]] = true
	}

	tests := []struct {
		words int
		sep   string
	}{
		{1, "-"},
		{4, "-"},
		{6, "_"},
		{3, " :: "},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.words)+tt.sep, func(t *testing.T) {
			t.Parallel()
			for range 50 {
				phrase, err := GeneratePassphrase(tt.words, tt.sep)
				require.NoError(t, err)

				tokens := strings.Split(phrase, tt.sep)
				require.Len(t, tokens, tt.words+1)
				for _, w := range tokens[:tt.words] {
					assert.True(t, vocabulary[w], "unexpected word %q", w)
				}
				n, err := strconv.Atoi(tokens[tt.words])
				require.NoError(t, err)
				assert.GreaterOrEqual(t, n, 0)
				assert.Less(t, n, 100)
			}
		})
	}
}

func TestGeneratePassphraseInvalid(t *testing.T) {
	t.Parallel()
	_, err := GeneratePassphrase(0, "-")
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
	_, err = GeneratePassphrase(4, "")
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
}

func TestGeneratePassphraseDraws(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	src := mocks.NewMockRandomSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Intn(WordListSize).Return(0, nil),
		src.EXPECT().Intn(WordListSize).Return(WordListSize-1, nil),
		src.EXPECT().Intn(100).Return(7, nil),
	)

	phrase, err := New(src).GeneratePassphrase(2, ".")
	require.NoError(t, err)
	assert.Equal(t, "Apple.Xenon.7", phrase)
}

func TestWordList(t *testing.T) {
	t.Parallel()
	words := WordList()
	assert.Len(t, words, 49)
	assert.Equal(t, WordListSize, len(words))

	seen := map[string]bool{}
	for _, w := range words {
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
		assert.Equal(t, strings.ToLower(w), w)
	}

	words[0] = "mutated"
	assert.Equal(t, "apple", WordList()[0], "WordList must return a copy")
}

func TestGenerateMany(t *testing.T) {
	t.Parallel()
	req := GenerationRequest{Length: 16, Classes: charset.AllClasses}

	out, err := GenerateMany(MaxBatch, req)
	require.NoError(t, err)
	require.Len(t, out, 50)
	seen := map[string]bool{}
	for _, pw := range out {
		assert.Len(t, pw, 16)
		assertCovers(t, pw, req.Classes)
		seen[pw] = true
	}
	assert.Len(t, seen, 50, "secrets should be generated independently")

	one, err := GenerateMany(1, req)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestGenerateManyInvalid(t *testing.T) {
	t.Parallel()
	req := GenerationRequest{Length: 16, Classes: charset.AllClasses}
	for _, count := range []int{51, 0, -1} {
		out, err := GenerateMany(count, req)
		assert.ErrorIs(t, err, ks_err.ErrInvalidRequest, "count %d", count)
		assert.Nil(t, out)
	}

	out, err := GenerateMany(5, GenerationRequest{Length: 16})
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
	assert.Nil(t, out)
}

func TestGenerateManyAllOrNothing(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	src := mocks.NewMockRandomSource(ctrl)
	boom := errors.New("boom")
	gomock.InOrder(
		// first secret: 4 draws + 3 swaps
		src.EXPECT().Intn(gomock.Any()).Return(0, nil).Times(7),
		src.EXPECT().Intn(gomock.Any()).Return(0, boom),
	)

	out, err := New(src).GenerateMany(3, GenerationRequest{Length: 4, Classes: charset.AllClasses})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestRedact(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(empty)", Redact(""))
	assert.Equal(t, "****", Redact("pa§s"))
	assert.Equal(t, []string{"**", "***"}, RedactAll([]string{"ab", "abc"}))
}

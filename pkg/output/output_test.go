package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/history"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"yml", FormatYAML},
		{" yaml ", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ks_err.ErrInvalidRequest)
}

func mustReport(t *testing.T, secret string) *strength.Report {
	t.Helper()
	r, err := strength.Evaluate(secret)
	require.NoError(t, err)
	return &r
}

func TestGeneratedText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := New(&buf, FormatText, true).Generated([]Generated{
		{Kind: "password", Secret: "Aa1!Aa1!Aa1!", Strength: mustReport(t, "Aa1!Aa1!Aa1!")},
		{Kind: "password", Secret: "1234"},
	})
	require.NoError(t, err)
	// a bytes.Buffer is not a terminal, so no escapes are emitted
	assert.Equal(t, "Aa1!Aa1!Aa1!\n  strength: Very Strong (90/100)\n1234\n", buf.String())
}

func TestGeneratedJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := New(&buf, FormatJSON, false).Generated([]Generated{{Kind: "pin", Secret: "<&>1"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"secret": "<&>1"`)

	var decoded []Generated
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []Generated{{Kind: "pin", Secret: "<&>1"}}, decoded)
}

func TestGeneratedYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := New(&buf, FormatYAML, false).Generated([]Generated{
		{Kind: "passphrase", Secret: "Apple-Xenon-7", Strength: mustReport(t, "Apple-Xenon-7")},
	})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Apple-Xenon-7", decoded[0]["secret"])
	assert.Equal(t, "Strong", decoded[0]["strength"].(map[string]any)["label"])
}

func TestReportText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Report(*mustReport(t, "aaaaaaaaaaaaaaaa")))
	want := strings.Join([]string{
		"Strength: Medium",
		"Score:    40/100",
		"Length:   16",
		"Classes:  lowercase",
		"Feedback:",
		"  - " + strength.FeedbackUppercase,
		"  - " + strength.FeedbackDigit,
		"  - " + strength.FeedbackSpecial,
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestReportNoClasses(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "none", classSummary(strength.Report{}))
}

func TestEntries(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	entries, err := history.NewEntries([]string{"Aa1!Aa1!Aa1!"}, "staging db", at)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Entries(entries))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "SECRET"))
	assert.Contains(t, lines[2], "Very Strong")
	assert.Contains(t, lines[2], "2026-10-15 09:30:00")
	assert.Contains(t, lines[2], "staging db")
	assert.Contains(t, lines[2], entries[0].ID.String())

	buf.Reset()
	require.NoError(t, New(&buf, FormatJSON, false).Entries(entries))
	assert.Contains(t, buf.String(), `"strength": "Very Strong"`)
	assert.Contains(t, buf.String(), `"description": "staging db"`)
}

func TestTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tbl := NewTable("A", "LONGER").Row("xyz", "1").Row("q")
	assert.Equal(t, 2, tbl.Len())
	_, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "A    LONGER\n-    ------\nxyz  1\nq\n", buf.String())

	buf.Reset()
	_, err = NewTable("K").WithRule("").Row("v").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "K\nv\n", buf.String())
}

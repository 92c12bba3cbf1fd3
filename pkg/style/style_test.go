package style_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/duscan/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    style.Format
		wantErr bool
	}{
		{"auto", style.FormatAuto, false},
		{"", style.FormatAuto, false},
		{"term", style.FormatTerminal, false},
		{"terminal", style.FormatTerminal, false},
		{"text", style.FormatText, false},
		{"plain", style.FormatText, false},
		{"TEXT", style.FormatText, false},
		{"bogus", style.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := style.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "auto", style.FormatAuto.String())
	assert.Equal(t, "term", style.FormatTerminal.String())
	assert.Equal(t, "text", style.FormatText.String())
	assert.Equal(t, "unknown", style.Format(99).String())
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, style.FormatText, style.DetectFormat(os.Stdout))
}

func TestDetectFormat_NonTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	// A regular file is never a terminal
	assert.Equal(t, style.FormatText, style.DetectFormat(f))
}

func TestResolve(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, style.FormatText, style.FormatAuto.Resolve(f))
	assert.Equal(t, style.FormatTerminal, style.FormatTerminal.Resolve(f))
	assert.Equal(t, style.FormatText, style.FormatText.Resolve(f))
}

func TestResolve_NonFileWriter(t *testing.T) {
	// Auto against a buffer can never be a terminal, regardless of what
	// stdout is attached to.
	var buf bytes.Buffer

	assert.Equal(t, style.FormatText, style.FormatAuto.Resolve(&buf))
	assert.Equal(t, style.FormatTerminal, style.FormatTerminal.Resolve(&buf))
}

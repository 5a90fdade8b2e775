package ui_test

import (
	"os"
	"testing"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat_RoundTrips(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		parsed, err := ui.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestParseFormat_Aliases(t *testing.T) {
	cases := map[string]ui.Format{
		"":         ui.FormatAuto,
		"terminal": ui.FormatTerminal,
		"TERM":     ui.FormatTerminal,
		"plain":    ui.FormatText,
		"Json":     ui.FormatJSON,
	}
	for in, want := range cases {
		got, err := ui.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ui.ParseFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unknown format: yaml")
	assert.Equal(t, "yaml", errors.GetErrorDetails(err)["format"])
}

func TestDetectFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("redirected output is plain text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})

	t.Run("NO_COLOR forces plain text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}

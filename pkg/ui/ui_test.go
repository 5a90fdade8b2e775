package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/types"
	"github.com/civixgo/civix/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *types.Report {
	r := types.NewReport()
	r.MadeDirectory("/ext/tests/phpunit")
	r.Wrote("/ext/tests/phpunit/bootstrap.php")
	r.Skipped("/ext/phpunit.xml.dist", types.LevelComment)
	r.Skipped("/ext/tests/phpunit/CRM/Foo/BarTest.php", types.LevelError)
	return r
}

func TestNewRenderer(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(f, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(sampleReport()))
	assert.Equal(t, "Make directory /ext/tests/phpunit\n"+
		"Write /ext/tests/phpunit/bootstrap.php\n"+
		"Skip /ext/phpunit.xml.dist: file already exists\n"+
		"Skip /ext/tests/phpunit/CRM/Foo/BarTest.php: file already exists\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrWrongProjectType, "Wrong extension type: report")))
	assert.Equal(t, "Error: Wrong extension type: report\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderMessage("Wrote man pages to /tmp/man"))
	assert.Equal(t, "Wrote man pages to /tmp/man\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Write /ext/tests/phpunit/bootstrap.php")
	assert.Contains(t, out, "Skip /ext/phpunit.xml.dist: file already exists")
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("\n")))

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrExtNotFound, "could not find info.xml")))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "could not find info.xml\n")
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(sampleReport()))

	var decoded struct {
		Lines []types.ReportLine `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Lines, 4)
	assert.Equal(t, types.LevelError, decoded.Lines[3].Level)
	assert.Equal(t, types.ActionSkip, decoded.Lines[3].Action)

	buf.Reset()
	err = errors.New(errors.ErrUnknownTemplate, `invalid test template "bogus"`).WithDetail("template", "bogus")
	require.NoError(t, r.RenderError(err))

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, "UNKNOWN_TEMPLATE", obj["code"])
	assert.Equal(t, `invalid test template "bogus"`, obj["error"])
	assert.Equal(t, map[string]interface{}{"template": "bogus"}, obj["details"])

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.JSONEq(t, `{"message": "done"}`, buf.String())
}

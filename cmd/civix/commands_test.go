package civix

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/filesystem"
	"github.com/civixgo/civix/pkg/testutil"
	"github.com/civixgo/civix/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps tests away from the user's config and log files
func isolate(t *testing.T) {
	t.Helper()
	testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
}

func newExtension(t *testing.T, info string) types.FS {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteManifest(info)
	return env.FS
}

func execute(t *testing.T, fsys types.FS, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeStreams(t, fsys, args...)
	return out, err
}

// executeStreams runs the root command and returns stdout and stderr
func executeStreams(t *testing.T, fsys types.FS, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd(fsys)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// jsonError is the shape the json format renders errors in
type jsonError struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details"`
}

func TestGenerateTest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	out, err := execute(t, env.FS, "--ext-dir", env.ExtDir, "generate:test", "CRM_Myextension_MyTest")
	require.NoError(t, err)

	assert.Equal(t, "Write /ext/phpunit.xml.dist\n"+
		"Make directory /ext/tests/phpunit\n"+
		"Write /ext/tests/phpunit/bootstrap.php\n"+
		"Make directory /ext/tests/phpunit/CRM/Myextension\n"+
		"Write /ext/tests/phpunit/CRM/Myextension/MyTest.php\n", out)

	test := env.ReadFile("tests/phpunit/CRM/Myextension/MyTest.php")
	assert.Contains(t, test, "class CRM_Myextension_MyTest extends")
	assert.Contains(t, test, "@group headless")
	assert.Contains(t, env.ReadFile("phpunit.xml.dist"), "org.example.myextension")

	t.Run("second run reports the existing test", func(t *testing.T) {
		generated := []string{
			"phpunit.xml.dist",
			"tests/phpunit/bootstrap.php",
			"tests/phpunit/CRM/Myextension/MyTest.php",
		}
		before := env.Snapshot(generated...)

		out, err := execute(t, env.FS, "--ext-dir", env.ExtDir, "generate:test", "CRM_Myextension_MyTest")
		require.Error(t, err)
		assert.True(t, IsReported(err))

		assert.Equal(t, "Skip /ext/phpunit.xml.dist: file already exists\n"+
			"Skip /ext/tests/phpunit/bootstrap.php: file already exists\n"+
			"Skip /ext/tests/phpunit/CRM/Myextension/MyTest.php: file already exists\n", out)
		assert.Equal(t, before, env.Snapshot(generated...))
	})
}

func TestGenerateTest_Alias(t *testing.T) {
	isolate(t)
	fsys := newExtension(t, testutil.ModuleInfo)

	_, err := execute(t, fsys, "--ext-dir", "/ext", "generate-test", `Civi\Myextension\FooTest`, "--template", "e2e")
	require.NoError(t, err)

	data, err := fsys.ReadFile("/ext/tests/phpunit/Civi/Myextension/FooTest.php")
	require.NoError(t, err)
	assert.Contains(t, string(data), `namespace Civi\Myextension;`)
	assert.Contains(t, string(data), "@group e2e")
}

func TestGenerateTest_TemplateFromConfig(t *testing.T) {
	isolate(t)
	t.Setenv("CIVIX_GENERATE_TEST_TEMPLATE", "legacy")
	fsys := newExtension(t, testutil.ModuleInfo)

	_, err := execute(t, fsys, "--ext-dir", "/ext", "generate:test", "CRM_Myextension_LegacyTest")
	require.NoError(t, err)

	data, err := fsys.ReadFile("/ext/tests/phpunit/CRM/Myextension/LegacyTest.php")
	require.NoError(t, err)
	assert.Contains(t, string(data), `extends \CiviUnitTestCase`)

	t.Run("flag wins over config", func(t *testing.T) {
		_, err := execute(t, fsys, "--ext-dir", "/ext", "generate:test", "CRM_Myextension_OtherTest", "--template=e2e")
		require.NoError(t, err)

		data, err := fsys.ReadFile("/ext/tests/phpunit/CRM/Myextension/OtherTest.php")
		require.NoError(t, err)
		assert.Contains(t, string(data), "EndToEndInterface")
	})
}

func TestGenerateTest_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		info    string
		args    []string
		code    errors.ErrorCode
		message string
	}{
		{
			name:    "wrong extension type",
			info:    testutil.ExtensionInfo("org.example.report", "report"),
			args:    []string{"CRM_Foo_BarTest"},
			code:    errors.ErrWrongProjectType,
			message: "Wrong extension type: report",
		},
		{
			name:    "missing Test suffix",
			info:    testutil.ModuleInfo,
			args:    []string{"FooBar"},
			code:    errors.ErrInvalidIdentifier,
			message: `Class name must end with the word "Test"`,
		},
		{
			name:    "unknown template",
			info:    testutil.ModuleInfo,
			args:    []string{"CRM_Foo_BarTest", "--template", "bogus"},
			code:    errors.ErrUnknownTemplate,
			message: `invalid test template "bogus" (valid: e2e, headless, legacy)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			fsys := newExtension(t, tt.info)

			args := append([]string{"--ext-dir", "/ext", "generate:test"}, tt.args...)
			out, err := execute(t, fsys, args...)
			require.Error(t, err)
			assert.True(t, IsReported(err))
			assert.True(t, errors.IsErrorCode(err, tt.code))
			assert.Contains(t, out, tt.message+"\n")
		})
	}

	t.Run("wrong extension type writes nothing", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteManifest(tests[0].info)
		_, _ = execute(t, env.FS, "--ext-dir", env.ExtDir, "generate:test", "CRM_Foo_BarTest")
		assert.False(t, env.Exists("phpunit.xml.dist"))
		assert.False(t, env.Exists("tests"))
	})
}

func TestGenerateTest_NoExtension(t *testing.T) {
	isolate(t)

	out, errOut, err := executeStreams(t, filesystem.NewMemory(), "generate:test", "CRM_Foo_BarTest")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrExtNotFound))
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: could not find info.xml in ")
}

func TestGenerateTest_JSONErrors(t *testing.T) {
	tests := []struct {
		name   string
		fsys   func(t *testing.T) types.FS
		args   []string
		code   errors.ErrorCode
		detail string
	}{
		{
			name:   "no extension",
			fsys:   func(t *testing.T) types.FS { return filesystem.NewMemory() },
			args:   []string{"generate:test", "CRM_Foo_BarTest"},
			code:   errors.ErrExtNotFound,
			detail: "start",
		},
		{
			name:   "manifest without extension element",
			fsys:   func(t *testing.T) types.FS { return newExtension(t, "<module/>") },
			args:   []string{"--ext-dir", "/ext", "generate:test", "CRM_Foo_BarTest"},
			code:   errors.ErrManifestParse,
			detail: "path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			args := append([]string{"--format", "json"}, tt.args...)
			out, errOut, err := executeStreams(t, tt.fsys(t), args...)
			require.Error(t, err)
			assert.True(t, IsReported(err))
			assert.Empty(t, errOut)

			var decoded jsonError
			require.NoError(t, json.Unmarshal([]byte(out), &decoded), out)
			assert.Equal(t, tt.code, decoded.Code)
			assert.Equal(t, errors.Message(err), decoded.Error)
			assert.Contains(t, decoded.Details, tt.detail)
		})
	}
}

func TestGenerateTest_JSON(t *testing.T) {
	isolate(t)
	fsys := newExtension(t, testutil.ModuleInfo)

	out, err := execute(t, fsys, "--ext-dir", "/ext", "--format", "json", "generate:test", "CRM_Myextension_MyTest")
	require.NoError(t, err)

	var decoded struct {
		Lines []types.ReportLine `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Lines, 5)
	assert.Equal(t, types.ActionWrite, decoded.Lines[4].Action)
	assert.Equal(t, "/ext/tests/phpunit/CRM/Myextension/MyTest.php", decoded.Lines[4].Path)
}

func TestGenerateTest_DiscoversExtensionOnDisk(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	ext := env.ExtDir
	nested := filepath.Join(ext, "CRM", "Myextension")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"generate:test", "CRM_Myextension_DiskTest"})
	require.NoError(t, root.Execute())

	resolved, err := filepath.EvalSymlinks(ext)
	require.NoError(t, err)
	for _, p := range []string{
		"phpunit.xml.dist",
		filepath.Join("tests", "phpunit", "bootstrap.php"),
		filepath.Join("tests", "phpunit", "CRM", "Myextension", "DiskTest.php"),
	} {
		_, err := os.Stat(filepath.Join(resolved, p))
		assert.NoError(t, err, p)
	}
}

func TestConfigCmd(t *testing.T) {
	isolate(t)
	t.Setenv("CIVIX_OUTPUT_FORMAT", "text")

	out, err := execute(t, filesystem.NewMemory(), "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[generate.test]")
	assert.Contains(t, out, "template = 'headless'")
	assert.Contains(t, out, "format = 'text'")
}

func TestConfigCmd_Init(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("CIVIX_CONFIG_DIR", dir)
	fsys := filesystem.NewMemory()
	path := filepath.Join(dir, "config.toml")

	out, err := execute(t, fsys, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Write "+path)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `# template = "headless"`)

	out, err = execute(t, fsys, "config", "--init")
	require.NoError(t, err)
	assert.Equal(t, "Skip "+path+": file already exists\n", out)
}

func TestConfigCmd_InitWriteFailure(t *testing.T) {
	isolate(t)
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	out, err := execute(t, fsys, "--format", "json", "config", "--init")
	require.Error(t, err)
	assert.True(t, IsReported(err))

	// the empty report comes first, then the error document
	dec := json.NewDecoder(strings.NewReader(out))
	var report struct {
		Lines []types.ReportLine `json:"lines"`
	}
	require.NoError(t, dec.Decode(&report))
	assert.Empty(t, report.Lines)

	var decoded jsonError
	require.NoError(t, dec.Decode(&decoded))
	assert.Equal(t, errors.ErrFilesystem, decoded.Code)
	assert.Contains(t, decoded.Details, "path")
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, filesystem.NewMemory(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "civix version dev")
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	out, err := execute(t, filesystem.NewMemory(), "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "templates")
	assert.Contains(t, out, "running-tests")

	out, err = execute(t, filesystem.NewMemory(), "help", "running-tests")
	require.NoError(t, err)
	assert.Contains(t, out, "phpunit4 --group headless")
}

func TestRootWithoutCommand(t *testing.T) {
	isolate(t)
	_, err := execute(t, filesystem.NewMemory())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCompletionCmd(t *testing.T) {
	isolate(t)
	out, err := execute(t, filesystem.NewMemory(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "civix")
}

func TestManCmd(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "man")
	fsys := filesystem.NewOS()

	out, err := execute(t, fsys, "man", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	_, err = os.Stat(filepath.Join(dir, "civix.1"))
	assert.NoError(t, err)
}

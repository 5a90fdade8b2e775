package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/civixgo/civix/pkg/filesystem"
	"github.com/civixgo/civix/pkg/manifest"
	"github.com/civixgo/civix/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// ModuleInfo is the info.xml of a module extension keyed org.example.myextension
const ModuleInfo = `<?xml version="1.0"?>
<extension key="org.example.myextension" type="module">
  <file>myextension</file>
  <name>My Extension</name>
</extension>
`

// ExtensionInfo returns a minimal info.xml for an extension of the given type
func ExtensionInfo(key, extType string) string {
	file := key
	if ext := filepath.Ext(key); ext != "" {
		file = ext[1:]
	}
	return fmt.Sprintf("<extension key=%q type=%q><file>%s</file></extension>\n", key, extType, file)
}

// TestEnvironment is an extension plus isolated user directories
type TestEnvironment struct {
	ExtDir    string
	ConfigDir string
	StateDir  string
	FS        types.FS
	Type      EnvType

	t *testing.T
}

// NewTestEnvironment creates an environment holding a module extension
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.ExtDir = "/ext"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.ExtDir = filepath.Join(t.TempDir(), "ext")
		env.FS = filesystem.NewOS()
	}
	env.ConfigDir = t.TempDir()
	env.StateDir = t.TempDir()

	t.Setenv("CIVIX_CONFIG_DIR", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("CIVIX_LOGGING_FILE", "false")
	t.Setenv("CIVIX_EXT_DIR", "")
	t.Setenv("NO_COLOR", "1")

	if err := env.FS.MkdirAll(env.ExtDir, 0755); err != nil {
		t.Fatalf("Failed to create extension directory: %v", err)
	}
	env.WriteManifest(ModuleInfo)

	return env
}

// Path returns rel joined under the extension directory
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.ExtDir, filepath.FromSlash(rel))
}

// WriteManifest replaces the extension's info.xml
func (env *TestEnvironment) WriteManifest(content string) {
	env.t.Helper()
	env.WriteFile(manifest.FileName, content)
}

// WriteFile writes content to rel under the extension, creating parents
func (env *TestEnvironment) WriteFile(rel, content string) {
	env.t.Helper()
	path := env.Path(rel)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

// ReadFile returns the content of rel under the extension
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.Path(rel))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether rel exists under the extension
func (env *TestEnvironment) Exists(rel string) bool {
	_, err := env.FS.Stat(env.Path(rel))
	return err == nil
}

// Snapshot returns the contents of the given files, for before/after checks
func (env *TestEnvironment) Snapshot(rels ...string) map[string]string {
	env.t.Helper()
	out := make(map[string]string, len(rels))
	for _, rel := range rels {
		out[rel] = env.ReadFile(rel)
	}
	return out
}

package testutil

import (
	"os"
	"testing"

	"github.com/civixgo/civix/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		env := NewTestEnvironment(t, envType)

		info, err := manifest.Load(env.FS, env.ExtDir)
		require.NoError(t, err)
		assert.Equal(t, "module", info.Type)
		assert.Equal(t, "org.example.myextension", info.Key)

		assert.Equal(t, env.ConfigDir, os.Getenv("CIVIX_CONFIG_DIR"))
		assert.Equal(t, "false", os.Getenv("CIVIX_LOGGING_FILE"))
	}
}

func TestFiles(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	assert.False(t, env.Exists("tests/phpunit/bootstrap.php"))
	env.WriteFile("tests/phpunit/bootstrap.php", "<?php\n")
	assert.True(t, env.Exists("tests/phpunit/bootstrap.php"))
	assert.Equal(t, "/ext/tests/phpunit/bootstrap.php", env.Path("tests/phpunit/bootstrap.php"))

	snap := env.Snapshot("tests/phpunit/bootstrap.php", "info.xml")
	assert.Equal(t, "<?php\n", snap["tests/phpunit/bootstrap.php"])
	assert.Equal(t, ModuleInfo, snap["info.xml"])
}

func TestExtensionInfo(t *testing.T) {
	info, err := manifest.Parse([]byte(ExtensionInfo("org.example.report", "report")))
	require.NoError(t, err)
	assert.Equal(t, "report", info.Type)
	assert.Equal(t, "report", info.File)
}

package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/manifest"
	"github.com/civixgo/civix/pkg/types"
)

// Environment variable names
const (
	// EnvExtDir points civix at an extension directory
	EnvExtDir = "CIVIX_EXT_DIR"

	// EnvConfigDir overrides the XDG config directory for civix
	EnvConfigDir = "CIVIX_CONFIG_DIR"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "civix"

	// UserConfigFile is the per-user configuration file name
	UserConfigFile = "config.toml"

	// ExtConfigFile is the optional per-extension configuration file name
	ExtConfigFile = ".civix.toml"
)

// Paths provides the locations a civix command works with
type Paths interface {
	ExtDir() string
	ManifestPath() string
	ExtConfigPath() string
	UserConfigPath() string
}

type paths struct {
	extDir    string
	configDir string
}

// New resolves the extension directory and XDG locations. extDir may be
// empty, in which case it is discovered (see package docs).
func New(fsys types.FS, extDir string) (Paths, error) {
	p := &paths{configDir: configDir()}

	switch {
	case extDir != "":
		p.extDir = expandHome(extDir)
	case os.Getenv(EnvExtDir) != "":
		p.extDir = expandHome(os.Getenv(EnvExtDir))
	default:
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrExtNotFound, "failed to get current directory")
		}
		found, err := FindExtDir(fsys, cwd)
		if err != nil {
			return nil, err
		}
		p.extDir = found
	}

	abs, err := filepath.Abs(p.extDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExtNotFound, "failed to get absolute path for %s", p.extDir)
	}
	p.extDir = abs

	return p, nil
}

// FindExtDir walks up from start to the first directory containing info.xml
func FindExtDir(fsys types.FS, start string) (string, error) {
	dir := filepath.Clean(start)
	for {
		info, err := fsys.Stat(filepath.Join(dir, manifest.FileName))
		if err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrExtNotFound,
				"could not find %s in %s or any parent directory", manifest.FileName, start).
				WithDetail("start", start)
		}
		dir = parent
	}
}

func (p *paths) ExtDir() string {
	return p.extDir
}

func (p *paths) ManifestPath() string {
	return filepath.Join(p.extDir, manifest.FileName)
}

func (p *paths) ExtConfigPath() string {
	return filepath.Join(p.extDir, ExtConfigFile)
}

func (p *paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}

// configDir honours CIVIX_CONFIG_DIR, then XDG_CONFIG_HOME, then the
// platform default reported by xdg.
func configDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the per-user config file without resolving an
// extension directory
func UserConfigPath() string {
	return filepath.Join(configDir(), UserConfigFile)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

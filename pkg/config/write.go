package config

import (
	"path/filepath"

	"github.com/civixgo/civix/pkg/dirs"
	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/civixgo/civix/pkg/types"
)

// WriteStarter writes a commented copy of the defaults to path unless a
// file is already there. The outcome is recorded in report.
func WriteStarter(fsys types.FS, report *types.Report, path string) error {
	logger := logging.GetLogger("config")

	if _, err := fsys.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		report.Skipped(path, types.LevelComment)
		return nil
	} else if !errors.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to stat %s", path).
			WithDetail("path", path)
	}

	if err := dirs.Ensure(fsys, report, filepath.Dir(path)); err != nil {
		return err
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to write config to %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	report.Wrote(path)
	return nil
}

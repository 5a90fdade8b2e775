// Package dirs creates the directories generated files live in.
package dirs

import (
	"io/fs"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/civixgo/civix/pkg/types"
)

// DirPerm is the mode used for created directories
const DirPerm fs.FileMode = 0755

// Ensure makes sure every directory in dirs exists, creating missing
// ancestors as needed. One "Make directory" line is added to report per
// requested directory that did not exist; directories that already exist
// are silent. The first failure stops processing and is returned as a
// FILESYSTEM error.
func Ensure(fsys types.FS, report *types.Report, dirs ...string) error {
	logger := logging.GetLogger("dirs")

	for _, dir := range dirs {
		info, err := fsys.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return errors.Newf(errors.ErrFilesystem, "%s exists and is not a directory", dir).
					WithDetail("path", dir)
			}
			logger.Trace().Str("dir", dir).Msg("Directory already exists")
			continue
		}
		if !errors.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFilesystem, "failed to inspect %s", dir).
				WithDetail("path", dir)
		}

		if err := fsys.MkdirAll(dir, DirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrFilesystem, "failed to create directory %s", dir).
				WithDetail("path", dir)
		}

		report.MadeDirectory(dir)
		logger.Debug().Str("dir", dir).Msg("Created directory")
	}

	return nil
}

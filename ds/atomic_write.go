package ds

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// StageFile writes bs to a temporary file next to path and returns the
// temporary file's name; path itself stays untouched until CommitFile
// renames the staged file into place.
func StageFile(path string, bs []byte) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		err := errors.Wrapf(err, `StageFile error creating temporary file in "%s"`, dir)
		return "", err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(bs); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		err := errors.Wrapf(err, `StageFile error writing to temporary file "%s"`, tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		err := errors.Wrapf(err, `StageFile error closing temporary file "%s"`, tmpPath)
		return "", err
	}
	return tmpPath, nil
}

// CommitFile renames a staged file onto path, so that path either keeps
// its old content or holds the whole new content; a partially written
// file is never observable.
func CommitFile(tmpPath string, path string) error {
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		err := errors.Wrapf(err, `CommitFile error replacing "%s"`, path)
		return err
	}
	return nil
}

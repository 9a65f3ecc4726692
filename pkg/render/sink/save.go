package sink

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	errs "github.com/matzehuels/logtrack/pkg/errors"
)

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

// WriteClose writes data and closes w, reporting both failures.
func WriteClose(w io.WriteCloser, data []byte) (err error) {
	defer func() {
		err = combineErrors(err, w.Close())
	}()
	_, err = w.Write(data)
	return err
}

// Save writes an artifact to path, creating parent directories.
func Save(data []byte, path string) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteClose(f, data)
}

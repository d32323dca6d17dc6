package templates

import (
	"context"
	"os"
	"path/filepath"

	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/spf13/afero"
)

// Writer applies template files below a project directory.
type Writer struct {
	fs     afero.Fs
	logger logging.Logger
}

// NewWriter creates a Writer on fs.
func NewWriter(fs afero.Fs, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Writer{fs: fs, logger: logger.WithComponent("templates")}
}

// Write applies files in order below root. Each file is written, synced and
// closed before the next one is touched, and Write returns only after all of
// them are on disk. The first failure stops the run and names the target.
func (w *Writer) Write(ctx context.Context, root string, files []File) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if f.Remove {
			if err := w.remove(target); err != nil {
				return err
			}
			w.logger.Debug(ctx, "Removed file", "path", target)
			continue
		}

		if err := w.writeFile(target, []byte(f.Content)); err != nil {
			return err
		}
		w.logger.Debug(ctx, "Wrote file", "path", target, "bytes", len(f.Content))
	}

	return nil
}

func (w *Writer) writeFile(target string, data []byte) (err error) {
	if err := w.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeWriteFailed, "failed to create directory", target)
	}

	file, err := w.fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeWriteFailed, "failed to create file", target)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = scaffolderrors.WrapIO(cerr, scaffolderrors.ErrCodeWriteFailed, "failed to close file", target)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeWriteFailed, "failed to write file", target)
	}
	if err := file.Sync(); err != nil {
		return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeWriteFailed, "failed to sync file", target)
	}

	return nil
}

func (w *Writer) remove(target string) error {
	err := w.fs.Remove(target)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return scaffolderrors.WrapIO(err, scaffolderrors.ErrCodeRemoveFailed, "failed to remove file", target)
}

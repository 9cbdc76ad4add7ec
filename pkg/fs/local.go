package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Local writes files under a root directory.
type Local struct {
	fs afero.Fs
}

var _ Storage = (*Local)(nil)

func NewLocal(rootDir string) (*Local, error) {
	if rootDir == "" {
		return nil, errors.New("export directory can't be empty")
	}

	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create export directory: %s", rootDir)
	}

	return NewLocalFs(afero.NewBasePathFs(afero.NewOsFs(), rootDir)), nil
}

// NewLocalFs creates a storage on top of an existing file system.
func NewLocalFs(fs afero.Fs) *Local {
	return &Local{fs: fs}
}

func (l *Local) Create(_ context.Context, name string, reader io.Reader) (int64, error) {
	var (
		logger = log.WithField("name", name)
		dir    = filepath.Dir(name)
	)

	logger.Debugf("creating directory: %s", dir)
	if err := l.fs.MkdirAll(dir, 0755); err != nil {
		return 0, errors.Wrapf(err, "failed to create directory: %s", dir)
	}

	written, err := l.copyFile(reader, name)
	if err != nil {
		return 0, errors.Wrap(err, "failed to copy file")
	}

	logger.Debugf("copied %d bytes", written)
	return written, nil
}

func (l *Local) Delete(_ context.Context, name string) error {
	return l.fs.Remove(name)
}

func (l *Local) Size(_ context.Context, name string) (int64, error) {
	stat, err := l.fs.Stat(name)
	if err == nil {
		return stat.Size(), nil
	}

	return 0, err
}

func (l *Local) copyFile(source io.Reader, destinationPath string) (int64, error) {
	dest, err := l.fs.Create(destinationPath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create destination file")
	}

	defer dest.Close()

	written, err := io.Copy(dest, source)
	if err != nil {
		return 0, errors.Wrap(err, "failed to copy data")
	}

	return written, nil
}

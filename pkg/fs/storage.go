package fs

import (
	"context"
	"io"
)

// Storage is where pre-rendered pages are exported to.
type Storage interface {
	// Create will create a new file from reader, overwriting an existing one
	Create(ctx context.Context, name string, reader io.Reader) (int64, error)

	// Delete deletes the file
	Delete(ctx context.Context, name string) error

	// Size returns the size of the file in bytes, os.ErrNotExist if there is none
	Size(ctx context.Context, name string) (int64, error)
}

// Config describes the export target. Dir and S3 are mutually exclusive.
type Config struct {
	// Dir is a local directory to write pages to
	Dir string   `toml:"dir"`
	S3  S3Config `toml:"s3"`
}

// Enabled reports whether any export target is configured.
func (c Config) Enabled() bool {
	return c.Dir != "" || c.S3.Bucket != ""
}

// New creates the storage described by cfg.
func New(cfg Config) (Storage, error) {
	if cfg.S3.Bucket != "" {
		return NewS3(cfg.S3)
	}

	return NewLocal(cfg.Dir)
}

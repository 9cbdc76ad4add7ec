package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/podcastr/podcastr/pkg/model"
)

const (
	versionPath = "podcastr/version"
	pagePath    = "page/%s"

	CurrentVersion = 1
)

// BadgerConfig represents BadgerDB configuration parameters
type BadgerConfig struct {
	Truncate bool `toml:"truncate"`
	FileIO   bool `toml:"file_io"`
}

// Badger persists pages on local disk, so they survive restarts.
type Badger struct {
	db *badger.DB
}

var _ Store = (*Badger)(nil)

func NewBadger(config *Config) (*Badger, error) {
	var (
		dir = config.Dir
	)

	if dir == "" {
		return nil, errors.New("badger directory can't be empty")
	}

	log.Infof("opening page database %q", dir)

	// Make sure database directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "could not mkdir database dir")
	}

	opts := badger.DefaultOptions(dir).
		WithLogger(log.StandardLogger()).
		WithTruncate(true)

	if config.Badger != nil {
		opts.Truncate = config.Badger.Truncate
		if config.Badger.FileIO {
			opts.ValueLogLoadingMode = options.FileIO
		}
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	storage := &Badger{db: db}

	if err := db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(versionPath)); err == nil {
			return nil
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		return storage.setObj(txn, []byte(versionPath), CurrentVersion)
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to read database version")
	}

	version, err := storage.Version()
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to read database version")
	}

	if version != CurrentVersion {
		_ = db.Close()
		return nil, errors.Errorf("unsupported database version %d (want %d)", version, CurrentVersion)
	}

	return storage, nil
}

func (b *Badger) Close() error {
	log.Debug("closing page database")
	return b.db.Close()
}

func (b *Badger) Version() (int, error) {
	var (
		version = -1
	)

	err := b.db.View(func(txn *badger.Txn) error {
		return b.getObj(txn, []byte(versionPath), &version)
	})

	return version, err
}

func (b *Badger) Get(_ context.Context, slug string) (*model.Page, error) {
	var (
		page model.Page
		key  = b.getKey(pagePath, slug)
	)

	if err := b.db.View(func(txn *badger.Txn) error {
		return b.getObj(txn, key, &page)
	}); err != nil {
		return nil, err
	}

	return &page, nil
}

func (b *Badger) Set(_ context.Context, page *model.Page) error {
	key := b.getKey(pagePath, page.Slug)
	return b.db.Update(func(txn *badger.Txn) error {
		return b.setObj(txn, key, page)
	})
}

func (b *Badger) Delete(_ context.Context, slug string) error {
	key := b.getKey(pagePath, slug)
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(key); err != nil {
			return errors.Wrapf(err, "failed to delete page %q", slug)
		}
		return nil
	})
}

// Walk iterates over all stored pages.
func (b *Badger) Walk(_ context.Context, cb func(page *model.Page) error) error {
	return b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = b.getKey(pagePath, "")
		opts.PrefetchValues = true

		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			page := &model.Page{}
			if err := b.unmarshalObj(iter.Item(), page); err != nil {
				return err
			}

			if err := cb(page); err != nil {
				return err
			}
		}

		return nil
	})
}

func (b *Badger) getKey(format string, a ...interface{}) []byte {
	resourcePath := fmt.Sprintf(format, a...)
	fullPath := fmt.Sprintf("podcastr/v%d/%s", CurrentVersion, resourcePath)

	return []byte(fullPath)
}

func (b *Badger) setObj(txn *badger.Txn, key []byte, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize object for key %q", key)
	}

	return txn.Set(key, data)
}

func (b *Badger) getObj(txn *badger.Txn, key []byte, out interface{}) error {
	item, err := txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return model.ErrNotFound
		}

		return err
	}

	return b.unmarshalObj(item, out)
}

func (b *Badger) unmarshalObj(item *badger.Item, out interface{}) error {
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

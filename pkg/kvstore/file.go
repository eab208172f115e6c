package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"todo-list/pkg/log"
)

const (
	openTimeout   = time.Second
	corruptSuffix = ".corrupt"
)

var bucketName = []byte("slots")

// FileStore keeps every key in one bucket of a bbolt file. Each Set and
// Delete is its own transaction, so a crash leaves either the old or the new
// value on disk.
type FileStore struct {
	db   *bolt.DB
	path string
	l    log.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates or opens a file-backed store. A missing file starts
// empty. A file that is not a readable store is moved to <path>.corrupt and
// replaced with an empty one, so bad data never blocks startup.
func NewFileStore(path string, l log.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("kvstore: file path is required")
	}
	if l == nil {
		l = log.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create dir: %w", err)
	}

	db, err := openBolt(path)
	if err != nil && recoverable(err) {
		ctx := context.Background()
		l.Warnf(ctx, "kvstore.NewFileStore: %s is unreadable (%v), moving it to %s", path, err, path+corruptSuffix)
		if mvErr := os.Rename(path, path+corruptSuffix); mvErr != nil {
			return nil, fmt.Errorf("kvstore: move aside %s: %w", path, mvErr)
		}
		db, err = openBolt(path)
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", path, err)
	}

	return &FileStore{db: db, path: path, l: l}, nil
}

func openBolt(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// recoverable reports whether err is about the file's content rather than
// access to it. A held lock or a permission problem must surface.
func recoverable(err error) bool {
	switch {
	case errors.Is(err, berrors.ErrTimeout),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrNotExist):
		return false
	}
	return true
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value []byte
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		k, v := tx.Bucket(bucketName).Cursor().Seek([]byte(key))
		if k != nil && string(k) == key {
			value, found = append([]byte{}, v...), true
		}
		return nil
	})
	if err != nil {
		return nil, false, s.wrap("get", err)
	}
	return value, found, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	if err != nil {
		return s.wrap("set", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return s.wrap("delete", err)
	}
	return nil
}

// Close releases the file lock. Data is already on disk.
func (s *FileStore) Close() error {
	return s.db.Close()
}

func (s *FileStore) wrap(op string, err error) error {
	if errors.Is(err, berrors.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return fmt.Errorf("kvstore: %s %s: %w", op, s.path, err)
}

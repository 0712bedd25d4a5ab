package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"grocer-be/internal/logger"
	"grocer-be/internal/metrics"
)

// CorruptSuffix is appended to a store file that could not be decoded.
const CorruptSuffix = ".corrupt"

// FileStore keeps every key in one JSON document on disk. The whole document is
// rewritten through a temp file and rename on each mutation.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFileStore loads path into memory. A missing or empty file starts an
// empty store. A file that does not decode is renamed to path+".corrupt",
// counted as a parse failure in reg and replaced by an empty store.
func OpenFileStore(path string, reg *metrics.Registry) (*FileStore, error) {
	fs := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fs, nil
	case err != nil:
		return nil, errors.Wrap(err, "read store file")
	}

	if len(raw) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		fs.data = make(map[string]string)
		if reg != nil {
			reg.ParseFailures.Inc()
		}

		aside := path + CorruptSuffix
		log := logger.L().With(zap.String("layer", "storage"), zap.String("method", "OpenFileStore"))
		log.Warn("store file does not decode, starting empty",
			zap.String("path", path),
			zap.String("movedTo", aside),
			zap.Error(err),
		)
		if err := os.Rename(path, aside); err != nil {
			return nil, errors.Wrap(err, "move corrupt store file aside")
		}
	}
	return fs, nil
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	f.data[key] = string(value)
	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)
	if err := f.flush(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

func (f *FileStore) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store file")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create store dir")
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp store file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp store file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp store file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), f.path), "replace store file")
}

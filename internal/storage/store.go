// Package storage holds the string-keyed persisted store that backs a browsing
// context: cart, session, last order and order history all live here as JSON.
package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"grocer-be/internal/metrics"
)

var (
	ErrNotFound = errors.New("storage: key not found")
	ErrCorrupt  = errors.New("storage: value cannot be decoded")
)

// Store is a flat key-value store. Get returns ErrNotFound for absent keys;
// Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into dst. Decode failures are reported as
// ErrCorrupt so callers can fall back to a default without inspecting json errors.
func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(ErrCorrupt, "key %q: %v", key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode key %q", key)
	}
	return s.Set(ctx, key, raw)
}

type scoped struct {
	inner  Store
	prefix string
}

// Scope namespaces every key under prefix, one namespace per browsing context.
func Scope(s Store, prefix string) Store {
	return &scoped{inner: s, prefix: prefix + ":"}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

type instrumented struct {
	inner Store
	reg   *metrics.Registry
}

// WithMetrics counts reads and writes against reg.
func WithMetrics(s Store, reg *metrics.Registry) Store {
	return &instrumented{inner: s, reg: reg}
}

func (s *instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	s.reg.StoreReads.Inc()
	return s.inner.Get(ctx, key)
}

func (s *instrumented) Set(ctx context.Context, key string, value []byte) error {
	s.reg.StoreWrites.Inc()
	return s.inner.Set(ctx, key, value)
}

func (s *instrumented) Delete(ctx context.Context, key string) error {
	s.reg.StoreWrites.Inc()
	return s.inner.Delete(ctx, key)
}

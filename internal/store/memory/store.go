package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

type snapshot[T any] struct {
	items []T
	index map[string]int
}

// Store keeps a dataset in memory. Readers work on an immutable snapshot
// taken with a single atomic load. Writers are serialized and publish a new
// snapshot, so a reader sees either the old or the new collection.
type Store[T any] struct {
	name   string
	source Source[T]
	key    func(T) string
	clone  func(T) T

	current atomic.Pointer[snapshot[T]]

	mu       sync.Mutex
	pristine []T
}

type Option[T any] func(*Store[T])

// WithClone sets how a record is deep copied before Update hands it out.
// Records holding slices or maps need one.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(s *Store[T]) {
		s.clone = clone
	}
}

// New creates an empty store. Call Reload to fill it.
func New[T any](name string, source Source[T], key func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		name:   name,
		source: source,
		key:    key,
		clone:  func(v T) T { return v },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&snapshot[T]{items: []T{}, index: map[string]int{}})
	return s
}

func (s *Store[T]) Name() string { return s.name }

// All returns the live collection in natural order. Callers must treat it as
// read only.
func (s *Store[T]) All() []T {
	return s.current.Load().items
}

func (s *Store[T]) Len() int {
	return len(s.current.Load().items)
}

// Get finds a record by key ignoring case. A miss is not an error.
func (s *Store[T]) Get(key string) (T, bool) {
	snap := s.current.Load()
	i, ok := snap.index[normalizeKey(key)]
	if !ok {
		var zero T
		return zero, false
	}
	return snap.items[i], true
}

// Reload reads the source again and swaps the collection in one step. On
// failure the live collection is left untouched.
func (s *Store[T]) Reload(ctx context.Context) error {
	if s.source == nil {
		return ErrNilSource
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.source.Load(ctx)
	if err != nil {
		return err
	}

	snap, err := s.build(items)
	if err != nil {
		return LoadError{Source: s.source.Name(), Err: err}
	}

	s.pristine = s.cloneAll(items)
	s.current.Store(snap)
	return nil
}

// Update applies fn to a copy of the record under key and publishes a new
// collection with that record replaced. fn must not change the key.
func (s *Store[T]) Update(key string, fn func(*T) error) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.current.Load()
	i, ok := snap.index[normalizeKey(key)]
	if !ok {
		return zero, ErrRecordNotFound
	}

	rec := s.clone(snap.items[i])
	if err := fn(&rec); err != nil {
		return zero, err
	}
	if normalizeKey(s.key(rec)) != normalizeKey(s.key(snap.items[i])) {
		return zero, ErrKeyChanged
	}

	items := slices.Clone(snap.items)
	items[i] = rec
	s.current.Store(&snapshot[T]{items: items, index: snap.index})

	return s.clone(rec), nil
}

// Reset restores the collection as it was after the last successful Reload.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cloneAll(s.pristine)
	snap, err := s.build(items)
	if err != nil {
		// pristine was validated when it was loaded
		panic(err)
	}
	s.current.Store(snap)
}

func (s *Store[T]) build(items []T) (*snapshot[T], error) {
	if items == nil {
		items = []T{}
	}

	index := make(map[string]int, len(items))
	for i, rec := range items {
		k := normalizeKey(s.key(rec))
		if k == "" {
			return nil, fmt.Errorf("record %d has an empty key", i)
		}
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("duplicate key %q", s.key(rec))
		}
		index[k] = i
	}
	return &snapshot[T]{items: items, index: index}, nil
}

func (s *Store[T]) cloneAll(items []T) []T {
	out := make([]T, len(items))
	for i, rec := range items {
		out[i] = s.clone(rec)
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// Find returns the first record in natural order satisfying match.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	for _, rec := range s.current.Load().items {
		if match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

package rcparams

import (
	"sync"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/observability"
)

// Store is a mutex-guarded rendering-configuration store. A fresh Store is
// seeded with [Defaults]; values are validated against the key registry on
// every write, so a Store never holds an unknown key or a mistyped value.
type Store struct {
	mu     sync.RWMutex
	values map[Key]any
}

// NewStore returns a Store seeded with [Defaults].
func NewStore() *Store {
	s := &Store{values: make(map[Key]any, len(registry))}
	for k, v := range Defaults() {
		s.values[k] = v
	}
	return s
}

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
)

// Default returns the process-wide store. Destination scopes entered with
// destinations.Enter override this store.
func Default() *Store {
	defaultStoreOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}

// normalize validates v against k's registered kind and returns the value
// in canonical form (numeric sizes as float64). Unknown keys and mistyped
// values are rejected with coded errors.
func normalize(k Key, v any) (any, error) {
	kd, ok := registry[k]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidKey, "unknown rc key: %s", k)
	}

	switch kd {
	case kindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case kindStringList:
		if ss, ok := v.([]string); ok {
			return append([]string(nil), ss...), nil
		}
	case kindFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
	case kindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case kindInt:
		if n, ok := v.(int); ok {
			return n, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidValue, "invalid value for %s: %v (%T)", k, v, v)
}

// Set stores a single value, validating it first.
func (s *Store) Set(k Key, v any) error {
	nv, err := normalize(k, v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values[k] = nv
	s.mu.Unlock()

	observability.Store().OnSet(string(k))
	return nil
}

// Get returns the raw value for k and whether it is present.
func (s *Store) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[k]
	return v, ok
}

// Float returns the value of a numeric key, or 0 if absent or not numeric.
func (s *Store) Float(k Key) float64 {
	v, _ := s.Get(k)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

// Int returns the value of an integer key, or 0 if absent or not an int.
func (s *Store) Int(k Key) int {
	v, _ := s.Get(k)
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}

// String returns the value of a string key, or "" if absent or not a string.
func (s *Store) String(k Key) string {
	v, _ := s.Get(k)
	if str, ok := v.(string); ok {
		return str
	}
	return ""
}

// Bool returns the value of a boolean key, or false if absent or not a bool.
func (s *Store) Bool(k Key) bool {
	v, _ := s.Get(k)
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

// Strings returns a copy of the value of a string-list key, or nil.
func (s *Store) Strings(k Key) []string {
	v, _ := s.Get(k)
	if ss, ok := v.([]string); ok {
		return append([]string(nil), ss...)
	}
	return nil
}

// Snapshot returns a copy of the store's current contents.
func (s *Store) Snapshot() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Params, len(s.values))
	for k, v := range s.values {
		if ss, ok := v.([]string); ok {
			v = append([]string(nil), ss...)
		}
		out[k] = v
	}
	return out
}

// Push applies p as a scoped override and returns a restore function that
// puts back the prior values of exactly the pushed keys. Validation happens
// up front: if any entry is rejected, nothing is applied. The restore
// function must run unconditionally on scope exit (defer it); keys the
// caller sets independently inside the scope are untouched unless p also
// contains them.
//
// Overrides nest: each Push captures the values visible at its own entry,
// so LIFO restoration unwinds inner scopes without clobbering outer ones.
func (s *Store) Push(p Params) (func(), error) {
	normalized := make(map[Key]any, len(p))
	for k, v := range p {
		nv, err := normalize(k, v)
		if err != nil {
			return nil, err
		}
		normalized[k] = nv
	}

	s.mu.Lock()
	prior := make(map[Key]any, len(normalized))
	for k := range normalized {
		prior[k] = s.values[k]
	}
	for k, v := range normalized {
		s.values[k] = v
	}
	s.mu.Unlock()

	observability.Store().OnPush(len(normalized))

	restore := func() {
		s.mu.Lock()
		for k, v := range prior {
			s.values[k] = v
		}
		s.mu.Unlock()
		observability.Store().OnRestore(len(prior))
	}
	return restore, nil
}

// Package store loads and saves tracker state through a kv.Storage.
//
// Load never fails: a missing, unreadable or undecodable value yields the
// built-in default list. Save is write-through and overwrites the key.
package store

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/henhouse/internal/kv"
	"github.com/nibzard/henhouse/internal/logging"
	"github.com/nibzard/henhouse/internal/tracker"
)

// DefaultKey is the storage key state is persisted under.
const DefaultKey = "hs_tracker_v2"

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for fallback and save diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store owns the persisted tracker state.
type Store struct {
	kv     kv.Storage
	key    string
	logger *log.Logger
}

// New returns a Store backed by storage.
func New(storage kv.Storage, opts ...Option) *Store {
	s := &Store{
		kv:     storage,
		key:    DefaultKey,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key.
func (s *Store) Key() string {
	return s.key
}

// loadResult is the outcome of reading and decoding the stored value.
type loadResult struct {
	state tracker.State
	found bool
	err   error
}

func (r loadResult) ok() bool {
	return r.found && r.err == nil
}

// stateOrDefault collapses the result to a usable state.
func (r loadResult) stateOrDefault() tracker.State {
	if r.ok() {
		return r.state
	}
	return tracker.DefaultSteps()
}

func (s *Store) read(ctx context.Context) loadResult {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return loadResult{err: fmt.Errorf("read %s: %w", s.key, err)}
	}
	if !found {
		return loadResult{}
	}
	state, err := tracker.Decode([]byte(raw))
	if err != nil {
		return loadResult{found: true, err: fmt.Errorf("decode %s: %w", s.key, err)}
	}
	return loadResult{state: state, found: true}
}

// Load returns the persisted state, or the default list when there is no
// usable stored value.
func (s *Store) Load(ctx context.Context) tracker.State {
	res := s.read(ctx)
	switch {
	case res.ok():
		s.logger.Debug("loaded state", "key", s.key, "steps", len(res.state))
	case res.err != nil:
		s.logger.Warn("stored state unusable, using defaults", "key", s.key, "err", res.err)
	default:
		s.logger.Debug("no stored state, using defaults", "key", s.key)
	}
	return res.stateOrDefault()
}

// Save serializes state and overwrites the stored value.
func (s *Store) Save(ctx context.Context, state tracker.State) error {
	data, err := tracker.Encode(state)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	s.logger.Debug("saved state", "key", s.key, "bytes", len(data))
	return nil
}

// Toggle applies tracker.ToggleTask and writes the result through. Unknown
// ids return state unchanged without touching storage.
//
// On a save error the toggled state is still returned alongside the error.
func (s *Store) Toggle(ctx context.Context, state tracker.State, stepID, taskID string, done bool) (tracker.State, error) {
	if _, ok := tracker.FindTask(state, stepID, taskID); !ok {
		s.logger.Debug("toggle ignored, no such task", "step", stepID, "task", taskID)
		return state, nil
	}
	next := tracker.ToggleTask(state, stepID, taskID, done)
	s.logger.Info("task toggled", "step", stepID, "task", taskID, "done", done)
	return next, s.Save(ctx, next)
}

// Reset saves and returns the default list.
func (s *Store) Reset(ctx context.Context) (tracker.State, error) {
	state := tracker.DefaultSteps()
	if err := s.Save(ctx, state); err != nil {
		return state, err
	}
	s.logger.Info("state reset to defaults", "key", s.key)
	return state, nil
}

// Package session owns the presentation state of the calculator: the last
// calculated snapshot, kept for re-display and re-sharing, and the saved
// preferences.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/internal/prefs"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/output"
	"github.com/iwvelando/planning-trap/pkg/share"
	"go.uber.org/zap"
)

// ErrNoResult is returned when sharing before anything was calculated.
var ErrNoResult = errors.New("no result calculated yet")

// Snapshot is one calculation as the user saw it.
type Snapshot struct {
	Input        engine.Input  `json:"input"`
	Result       engine.Result `json:"result"`
	Insight      string        `json:"insight"`
	CalculatedAt time.Time     `json:"calculatedAt"`
}

// Display returns the snapshot prepared for rendering.
func (s Snapshot) Display() output.Display {
	return output.NewDisplay(s.Result, s.Insight)
}

// Session runs calculations for one user. It is safe for concurrent use.
type Session struct {
	logger *zap.Logger
	store  prefs.Store
	key    string
	links  share.Links
	now    func() time.Time

	mu      sync.RWMutex
	current *Snapshot
}

// Option configures a Session.
type Option func(*Session)

// WithLinks sets the addresses used in share text.
func WithLinks(links share.Links) Option {
	return func(s *Session) {
		s.links = links
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a Session saving preferences to store under key. A nil logger
// or store is replaced by a no-op logger or a memory store.
func New(logger *zap.Logger, store prefs.Store, key string, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	if key == "" {
		key = constants.PreferencesKey
	}

	s := &Session{
		logger: logger,
		store:  store,
		key:    key,
		links:  share.DefaultLinks(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore returns the saved preferences. A missing record yields empty
// preferences and no error.
func (s *Session) Restore(ctx context.Context) (prefs.Preferences, error) {
	p, ok, err := s.store.Load(ctx, s.key)
	if err != nil {
		return prefs.Preferences{}, err
	}
	if !ok {
		s.logger.Debug("no saved preferences",
			zap.String("op", "session.Restore"),
			zap.String("key", s.key),
		)
		return prefs.Preferences{}, nil
	}
	return p, nil
}

// Calculate computes in, remembers the result as current and saves the rate
// and hours. A failed save is logged and otherwise ignored.
func (s *Session) Calculate(ctx context.Context, in engine.Input) Snapshot {
	result := engine.Compute(in)
	snap := Snapshot{
		Input:        in,
		Result:       result,
		Insight:      engine.SelectInsight(result.TotalDamage),
		CalculatedAt: s.now(),
	}

	if err := s.store.Save(ctx, s.key, prefs.FromInput(in)); err != nil {
		s.logger.Warn("failed to save preferences",
			zap.String("op", "session.Calculate"),
			zap.String("key", s.key),
			zap.Error(err),
		)
	}

	s.mu.Lock()
	s.current = &snap
	s.mu.Unlock()

	s.logger.Debug("calculated planning cost",
		zap.String("op", "session.Calculate"),
		zap.Int("weeks", result.Weeks),
		zap.Float64("totalHours", result.TotalHours),
		zap.Float64("totalDamage", result.TotalDamage),
	)
	return snap
}

// Current returns the last snapshot and whether one exists.
func (s *Session) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

// Share returns every share payload for the current snapshot.
func (s *Session) Share() (share.Bundle, error) {
	snap, ok := s.Current()
	if !ok {
		return share.Bundle{}, ErrNoResult
	}
	return s.links.Build(snap.Result), nil
}

// LinkedInPost returns the LinkedIn payload for the current snapshot.
func (s *Session) LinkedInPost() (share.Post, error) {
	b, err := s.Share()
	return b.LinkedIn, err
}

// TwitterPost returns the Twitter payload for the current snapshot.
func (s *Session) TwitterPost() (share.Post, error) {
	b, err := s.Share()
	return b.Twitter, err
}

// Summary returns the clipboard text for the current snapshot.
func (s *Session) Summary() (string, error) {
	b, err := s.Share()
	return b.Summary, err
}

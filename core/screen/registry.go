package screen

import (
	"sync"
	"time"

	coreerrors "fjapps-store/core/errors"
	"fjapps-store/core/interfaces"
	"github.com/google/uuid"
)

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithMaxScreens caps the number of live screens. Opening one more evicts
// the least recently used screen. Zero means no cap.
func WithMaxScreens(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.maxScreens = n
		}
	}
}

// WithIdleTTL discards screens that have not been opened, read or searched
// for longer than ttl. Zero keeps screens until they are closed.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		if ttl > 0 {
			r.idleTTL = ttl
		}
	}
}

type registryEntry struct {
	screen   *Screen
	lastUsed time.Time
}

// Registry keeps the live screens of a host by id
type Registry struct {
	searcher Searcher
	logger   interfaces.Logger

	maxScreens int
	idleTTL    time.Duration
	now        func() time.Time

	mu      sync.Mutex
	screens map[string]*registryEntry
}

// NewRegistry creates a registry whose screens share searcher
func NewRegistry(searcher Searcher, logger interfaces.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		searcher: searcher,
		logger:   logger,
		now:      time.Now,
		screens:  make(map[string]*registryEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a screen and returns its id. Idle screens are swept first.
func (r *Registry) Open(cfg Config) (string, *Screen) {
	id := uuid.New().String()
	s := New(cfg, r.searcher, r.logger)

	r.mu.Lock()
	now := r.now()
	evicted := r.sweepLocked(now)
	if r.maxScreens > 0 && len(r.screens) >= r.maxScreens {
		if oldest, ok := r.oldestLocked(); ok {
			evicted = append(evicted, r.screens[oldest].screen)
			delete(r.screens, oldest)
			r.logEviction(oldest, "capacity")
		}
	}
	r.screens[id] = &registryEntry{screen: s, lastUsed: now}
	r.mu.Unlock()

	discardAll(evicted)
	return id, s
}

// Get returns the screen registered under id and marks it as used
func (r *Registry) Get(id string) (*Screen, error) {
	r.mu.Lock()
	e, ok := r.screens[id]
	if !ok {
		r.mu.Unlock()
		return nil, &coreerrors.NotFoundError{Resource: "screen", ID: id}
	}

	now := r.now()
	if r.expired(e, now) {
		delete(r.screens, id)
		r.logEviction(id, "idle")
		r.mu.Unlock()
		e.screen.Discard()
		return nil, &coreerrors.NotFoundError{Resource: "screen", ID: id}
	}
	e.lastUsed = now
	r.mu.Unlock()

	return e.screen, nil
}

// Close discards the screen and forgets it
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	e, ok := r.screens[id]
	delete(r.screens, id)
	r.mu.Unlock()

	if !ok {
		return &coreerrors.NotFoundError{Resource: "screen", ID: id}
	}
	e.screen.Discard()
	return nil
}

// CloseAll discards every screen
func (r *Registry) CloseAll() {
	r.mu.Lock()
	screens := r.screens
	r.screens = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, e := range screens {
		e.screen.Discard()
	}
}

// Sweep discards every screen idle longer than the TTL and returns how many
// were removed
func (r *Registry) Sweep() int {
	r.mu.Lock()
	evicted := r.sweepLocked(r.now())
	r.mu.Unlock()

	discardAll(evicted)
	return len(evicted)
}

// Len returns the number of live screens
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.screens)
}

func (r *Registry) expired(e *registryEntry, now time.Time) bool {
	return r.idleTTL > 0 && now.Sub(e.lastUsed) > r.idleTTL
}

// sweepLocked removes expired entries; the caller discards the returned screens
// after releasing the lock.
func (r *Registry) sweepLocked(now time.Time) []*Screen {
	if r.idleTTL <= 0 {
		return nil
	}

	var evicted []*Screen
	for id, e := range r.screens {
		if r.expired(e, now) {
			evicted = append(evicted, e.screen)
			delete(r.screens, id)
			r.logEviction(id, "idle")
		}
	}
	return evicted
}

func (r *Registry) oldestLocked() (string, bool) {
	var (
		oldestID string
		oldestAt time.Time
		found    bool
	)
	for id, e := range r.screens {
		if !found || e.lastUsed.Before(oldestAt) {
			oldestID, oldestAt, found = id, e.lastUsed, true
		}
	}
	return oldestID, found
}

func (r *Registry) logEviction(id, reason string) {
	if r.logger == nil {
		return
	}
	r.logger.Info("Screen evicted", map[string]interface{}{
		"screen_id": id,
		"reason":    reason,
	})
}

func discardAll(screens []*Screen) {
	for _, s := range screens {
		s.Discard()
	}
}

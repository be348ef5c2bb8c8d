// ABOUTME: Screen runs catalog searches asynchronously for an embedding host
// ABOUTME: Tracks the Idle/Loading/Loaded/Failed state and drops results after discard

// Package screen is the embeddable catalog screen. A host builds a Screen from
// an immutable Config, starts searches, and receives each outcome through a
// completion callback. Rendering is left to the host.
package screen

import (
	"context"
	"sync"

	"fjapps-store/core/domain"
	"fjapps-store/core/interfaces"
)

// State is the lifecycle position of a screen's latest search
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

// String returns the lower-case state name
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Token identifies one Search invocation. Tokens increase per screen; zero
// means no search was started.
type Token uint64

// Config is supplied once when the screen is created
type Config struct {
	Title          string
	SearchString   string
	ArtistID       int64
	ExcludedAppIDs []int64
}

// Searcher is the catalog capability a screen is composed with.
// *catalog.Service satisfies it.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest, exclusions domain.ExclusionSet) (domain.FilteredResult, error)
}

// Completion is delivered once per search that finishes before discard
type Completion struct {
	Token  Token
	State  State
	Result domain.FilteredResult
	Err    error
}

// Snapshot is the screen's current view of its newest search
type Snapshot struct {
	Token  Token
	State  State
	Result domain.FilteredResult
	Err    error
}

// Screen owns one search configuration for its whole lifetime
type Screen struct {
	title      string
	request    domain.SearchRequest
	exclusions domain.ExclusionSet
	searcher   Searcher
	logger     interfaces.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	last      Token
	snapshot  Snapshot
	discarded bool

	// delivery is held shared while a callback runs and exclusively by Discard
	delivery sync.RWMutex
}

// New creates an idle screen. The exclusion ids are copied.
func New(cfg Config, searcher Searcher, logger interfaces.Logger) *Screen {
	ctx, cancel := context.WithCancel(context.Background())

	return &Screen{
		title: cfg.Title,
		request: domain.SearchRequest{
			Title:    cfg.Title,
			RawQuery: cfg.SearchString,
			ArtistID: cfg.ArtistID,
		},
		exclusions: domain.NewExclusionSet(cfg.ExcludedAppIDs...),
		searcher:   searcher,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		snapshot:   Snapshot{State: Idle},
	}
}

// Title returns the display title
func (s *Screen) Title() string {
	return s.title
}

// Request returns the search request the screen issues
func (s *Screen) Request() domain.SearchRequest {
	return s.request
}

// Exclusions returns the screen's exclusion set
func (s *Screen) Exclusions() domain.ExclusionSet {
	return s.exclusions
}

// Snapshot returns the state of the newest search
func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Discarded reports whether Discard has been called
func (s *Screen) Discarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discarded
}

// Search starts a lookup and returns immediately with its token. onComplete
// may be nil; when set it runs on the search goroutine. Only the newest
// token updates the snapshot. On a discarded screen Search does nothing and
// returns zero.
func (s *Screen) Search(onComplete func(Completion)) Token {
	s.mu.Lock()
	if s.discarded {
		s.mu.Unlock()
		return 0
	}
	s.last++
	token := s.last
	s.snapshot = Snapshot{Token: token, State: Loading}
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(token, onComplete)

	return token
}

func (s *Screen) run(token Token, onComplete func(Completion)) {
	defer s.wg.Done()

	result, err := s.searcher.Search(s.ctx, s.request, s.exclusions)

	c := Completion{Token: token, State: Loaded, Result: result}
	if err != nil {
		c = Completion{Token: token, State: Failed, Err: err}
	}

	s.delivery.RLock()
	defer s.delivery.RUnlock()

	s.mu.Lock()
	if s.discarded {
		s.mu.Unlock()
		return
	}
	if token == s.last {
		s.snapshot = Snapshot(c)
	}
	s.mu.Unlock()

	if err != nil && s.logger != nil {
		s.logger.Warn("Screen search failed", map[string]interface{}{
			"title": s.title,
			"token": uint64(token),
			"error": err.Error(),
		})
	}

	if onComplete != nil {
		onComplete(c)
	}
}

// Discard cancels pending searches. Once it returns no completion callback
// will run. It must not be called from inside a completion callback.
func (s *Screen) Discard() {
	s.delivery.Lock()
	s.mu.Lock()
	already := s.discarded
	s.discarded = true
	s.mu.Unlock()
	s.delivery.Unlock()

	if already {
		return
	}
	s.cancel()

	if s.logger != nil {
		s.logger.Debug("Screen discarded", map[string]interface{}{
			"title": s.title,
		})
	}
}

// Wait blocks until every started search goroutine has returned
func (s *Screen) Wait() {
	s.wg.Wait()
}

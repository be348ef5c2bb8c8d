// ABOUTME: Catalog service issues scoped catalog lookups and removes excluded apps
// ABOUTME: Provides the search-and-filter contract independent of any presentation layer

package catalog

import (
	"context"
	"time"

	"fjapps-store/core/domain"
	coreerrors "fjapps-store/core/errors"
	"fjapps-store/core/interfaces"
	"fjapps-store/core/query"
)

// Options tunes the lookups issued by the service
type Options struct {
	// Limit is the page size requested from the catalog; zero lets the catalog decide
	Limit int

	// Timeout bounds a whole lookup, including time queued behind the
	// outbound rate limiter; zero leaves only the caller's deadline
	Timeout time.Duration
}

// Service searches the catalog on behalf of a screen
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new catalog service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	return &Service{
		deps: deps,
		opts: opts,
	}
}

// Search normalizes the request's query, looks it up in the catalog (scoped
// to the request's publisher when set) and drops every excluded app.
//
// Invalid requests fail with *errors.InvalidQueryError before any lookup is
// issued. Catalog failures are returned as *errors.CatalogUnavailableError
// and never carry a partial result. An empty result is not an error.
// With Options.Timeout set the lookup runs under that deadline, so a request
// that would queue too long behind the outbound limiter fails fast.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest, exclusions domain.ExclusionSet) (domain.FilteredResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		s.observe(interfaces.OutcomeInvalid, start)
		return domain.FilteredResult{}, err
	}

	term, err := query.Normalize(req.RawQuery)
	if err != nil {
		s.observe(interfaces.OutcomeInvalid, start)
		return domain.FilteredResult{}, err
	}

	if s.deps.Catalog == nil {
		s.observe(interfaces.OutcomeUnavailable, start)
		return domain.FilteredResult{}, &coreerrors.CatalogUnavailableError{API: "catalog", Message: "catalog client not configured"}
	}

	lookup := domain.CatalogQuery{
		Term:     term,
		ArtistID: req.ArtistID,
		Limit:    s.opts.Limit,
	}

	s.logDebug("Catalog lookup started", map[string]interface{}{
		"term":       term,
		"artist_id":  req.ArtistID,
		"scoped":     req.Scoped(),
		"limit":      lookup.Limit,
		"exclusions": exclusions.Len(),
	})

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	entries, err := s.deps.Catalog.Lookup(ctx, lookup)
	if err != nil {
		if !coreerrors.IsCatalogUnavailable(err) {
			err = &coreerrors.CatalogUnavailableError{API: "catalog", Message: "lookup failed", Err: err}
		}
		s.observe(interfaces.OutcomeUnavailable, start)
		s.logError("Catalog lookup failed", map[string]interface{}{
			"term":      term,
			"artist_id": req.ArtistID,
			"error":     err.Error(),
		})
		return domain.FilteredResult{}, err
	}

	kept := Filter(entries, exclusions)
	excluded := len(entries) - len(kept)

	result := domain.FilteredResult{
		Query:    term,
		ArtistID: req.ArtistID,
		Entries:  kept,
		Excluded: excluded,
	}

	outcome := interfaces.OutcomeSuccess
	if result.Empty() {
		outcome = interfaces.OutcomeEmpty
	}
	s.observe(outcome, start)
	if s.deps.Metrics != nil && excluded > 0 {
		s.deps.Metrics.AddExcluded(excluded)
	}

	s.logInfo("Catalog lookup completed", map[string]interface{}{
		"term":      term,
		"artist_id": req.ArtistID,
		"returned":  len(entries),
		"excluded":  excluded,
		"entries":   len(kept),
		"duration":  time.Since(start).String(),
	})

	return result, nil
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveLookup(outcome, time.Since(start))
	}
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}

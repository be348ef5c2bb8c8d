// ABOUTME: Search domain models for catalog lookups
// ABOUTME: Defines the host's search request, the scoped catalog query and the filtered result

package domain

import (
	"strings"

	coreerrors "fjapps-store/core/errors"
)

// SearchRequest is what the host asks for
type SearchRequest struct {
	// Title is shown by the presentation layer and has no effect on the lookup
	Title string

	// RawQuery is the human-typed search phrase, spaces included
	RawQuery string

	// ArtistID narrows the lookup to one publisher; zero means unscoped
	ArtistID int64
}

// Scoped reports whether the request is narrowed to a single publisher
func (r SearchRequest) Scoped() bool {
	return r.ArtistID > 0
}

// Validate checks the request invariants
func (r SearchRequest) Validate() error {
	if strings.TrimSpace(r.RawQuery) == "" {
		return &coreerrors.InvalidQueryError{Field: "query", Message: "search string must not be empty"}
	}

	if r.ArtistID < 0 {
		return &coreerrors.InvalidQueryError{Field: "artistId", Message: "publisher id must be a positive integer"}
	}

	return nil
}

// CatalogQuery is the lookup sent to the remote catalog
type CatalogQuery struct {
	// Term is the normalized search token. It is already escaped and must be
	// placed in the request URL verbatim.
	Term string

	// ArtistID narrows results to one publisher when non-zero
	ArtistID int64

	// Limit caps the number of entries requested; zero leaves it to the catalog
	Limit int
}

// FilteredResult is the ordered catalog result with excluded apps removed
type FilteredResult struct {
	// Query is the normalized term the lookup was issued with
	Query string

	// ArtistID is the publisher scope, zero when unscoped
	ArtistID int64

	// Entries keeps the catalog's order
	Entries []CatalogEntry

	// Excluded counts entries dropped because of the exclusion set
	Excluded int
}

// Empty reports the "no matches" state. It is not an error.
func (r FilteredResult) Empty() bool {
	return len(r.Entries) == 0
}

// AppIDs returns the app ids in result order
func (r FilteredResult) AppIDs() []int64 {
	ids := make([]int64, 0, len(r.Entries))
	for _, e := range r.Entries {
		ids = append(ids, e.AppID)
	}
	return ids
}

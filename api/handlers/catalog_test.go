package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"fjapps-store/api/dto/responses"
	"fjapps-store/core/domain"
	"fjapps-store/core/errors"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSearcher records requests and answers with searchFunc
type mockSearcher struct {
	lastReq        domain.SearchRequest
	lastExclusions domain.ExclusionSet
	searchFunc     func(ctx context.Context, req domain.SearchRequest, ex domain.ExclusionSet) (domain.FilteredResult, error)
}

func (m *mockSearcher) Search(ctx context.Context, req domain.SearchRequest, ex domain.ExclusionSet) (domain.FilteredResult, error) {
	m.lastReq = req
	m.lastExclusions = ex
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req, ex)
	}
	return domain.FilteredResult{}, nil
}

func filteringSearch(ctx context.Context, req domain.SearchRequest, ex domain.ExclusionSet) (domain.FilteredResult, error) {
	result := domain.FilteredResult{Query: "jazz+music", ArtistID: req.ArtistID}
	for _, id := range []int64{123, 789, 456, 999} {
		if ex.Contains(id) {
			result.Excluded++
			continue
		}
		result.Entries = append(result.Entries, domain.CatalogEntry{AppID: id, DisplayName: "App"})
	}
	return result, nil
}

func TestCatalogHandler_Search(t *testing.T) {
	_, api := humatest.New(t)
	searcher := &mockSearcher{searchFunc: filteringSearch}
	NewCatalogHandler(searcher).RegisterRoutes(api)

	resp := api.Get("/catalog/search?q=jazz%20music&artistId=909253&exclude=123,456&title=More")

	require.Equal(t, 200, resp.Code, resp.Body.String())
	assert.Equal(t, "jazz music", searcher.lastReq.RawQuery)
	assert.Equal(t, int64(909253), searcher.lastReq.ArtistID)
	assert.Equal(t, []int64{123, 456}, searcher.lastExclusions.IDs())

	var body responses.SearchResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "More", body.Title)
	assert.Equal(t, "jazz+music", body.Query)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, 2, body.Excluded)
	require.Len(t, body.Apps, 2)
	assert.Equal(t, int64(789), body.Apps[0].AppID)
	assert.Equal(t, int64(999), body.Apps[1].AppID)
}

func TestCatalogHandler_EmptyResult(t *testing.T) {
	_, api := humatest.New(t)
	NewCatalogHandler(&mockSearcher{}).RegisterRoutes(api)

	resp := api.Get("/catalog/search?q=zzzz")

	require.Equal(t, 200, resp.Code)
	var body responses.SearchResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Zero(t, body.Count)
	assert.NotNil(t, body.Apps)
}

func TestCatalogHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid query", &errors.InvalidQueryError{Field: "query", Message: "must not be empty"}, 400},
		{"catalog down", &errors.CatalogUnavailableError{API: "itunes", StatusCode: 503}, 503},
		{"catalog throttled", &errors.CatalogUnavailableError{API: "itunes", StatusCode: 403}, 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, api := humatest.New(t)
			NewCatalogHandler(&mockSearcher{
				searchFunc: func(ctx context.Context, req domain.SearchRequest, ex domain.ExclusionSet) (domain.FilteredResult, error) {
					return domain.FilteredResult{}, tt.err
				},
			}).RegisterRoutes(api)

			resp := api.Get("/catalog/search?q=x")

			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

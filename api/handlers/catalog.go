// ABOUTME: Catalog search handler for the Huma API
// ABOUTME: Runs a one-off scoped search and returns the filtered apps

package handlers

import (
	"context"
	"net/http"

	"fjapps-store/api/dto/mappers"
	"fjapps-store/api/dto/responses"
	"fjapps-store/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// CatalogSearcher searches the catalog and removes excluded apps
type CatalogSearcher interface {
	Search(ctx context.Context, req domain.SearchRequest, exclusions domain.ExclusionSet) (domain.FilteredResult, error)
}

// CatalogHandler handles one-off catalog searches
type CatalogHandler struct {
	searcher CatalogSearcher
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(searcher CatalogSearcher) *CatalogHandler {
	return &CatalogHandler{searcher: searcher}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchCatalog",
		Method:      http.MethodGet,
		Path:        "/catalog/search",
		Summary:     "Search the app catalog",
		Description: "Looks up apps matching a phrase, optionally scoped to one publisher, and drops excluded app ids",
		Tags:        []string{"Catalog"},
	}, h.Search)
}

// SearchCatalogInput defines the input for a catalog search
type SearchCatalogInput struct {
	Query    string  `query:"q" maxLength:"500" doc:"Search phrase; spaces are allowed"`
	ArtistID int64   `query:"artistId" doc:"Publisher id to scope the search to; 0 for none"`
	Exclude  []int64 `query:"exclude" doc:"Comma separated app ids to remove from the result"`
	Title    string  `query:"title" maxLength:"200" doc:"Display title echoed in the response"`
}

// SearchCatalogOutput defines the output for a catalog search
type SearchCatalogOutput struct {
	Body responses.SearchResponse
}

// Search handles GET /catalog/search
func (h *CatalogHandler) Search(ctx context.Context, input *SearchCatalogInput) (*SearchCatalogOutput, error) {
	req := domain.SearchRequest{
		Title:    input.Title,
		RawQuery: input.Query,
		ArtistID: input.ArtistID,
	}

	result, err := h.searcher.Search(ctx, req, domain.NewExclusionSet(input.Exclude...))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchCatalogOutput{Body: *mappers.ToSearchResponse(input.Title, result)}, nil
}

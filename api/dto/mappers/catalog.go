// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between catalog logic and the API layer

package mappers

import (
	"fjapps-store/api/dto/responses"
	"fjapps-store/core/domain"
	"fjapps-store/core/screen"
)

// ToAppResponse converts a catalog entry to its DTO
func ToAppResponse(entry domain.CatalogEntry) responses.AppResponse {
	m := entry.Metadata
	return responses.AppResponse{
		AppID:          entry.AppID,
		Name:           entry.DisplayName,
		ArtistID:       m.ArtistID,
		ArtistName:     m.ArtistName,
		BundleID:       m.BundleID,
		ArtworkURL:     m.ArtworkURL,
		StoreURL:       m.StoreURL,
		Price:          m.Price,
		FormattedPrice: m.FormattedPrice,
		Currency:       m.Currency,
		Rating:         m.Rating,
		RatingCount:    m.RatingCount,
		Genres:         m.Genres,
		Version:        m.Version,
	}
}

// ToAppResponses converts entries keeping their order; never returns nil
func ToAppResponses(entries []domain.CatalogEntry) []responses.AppResponse {
	apps := make([]responses.AppResponse, 0, len(entries))
	for _, e := range entries {
		apps = append(apps, ToAppResponse(e))
	}
	return apps
}

// ToSearchResponse converts a filtered result
func ToSearchResponse(title string, result domain.FilteredResult) *responses.SearchResponse {
	return &responses.SearchResponse{
		Title:    title,
		Query:    result.Query,
		ArtistID: result.ArtistID,
		Count:    len(result.Entries),
		Excluded: result.Excluded,
		Apps:     ToAppResponses(result.Entries),
	}
}

// ToScreenResponse converts a screen snapshot
func ToScreenResponse(id, title string, snap screen.Snapshot) *responses.ScreenResponse {
	resp := &responses.ScreenResponse{
		ID:    id,
		Title: title,
		State: snap.State.String(),
		Token: uint64(snap.Token),
		Count: len(snap.Result.Entries),
		Apps:  ToAppResponses(snap.Result.Entries),
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	return resp
}

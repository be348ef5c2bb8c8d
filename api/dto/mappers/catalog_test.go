package mappers

import (
	"errors"
	"testing"

	"fjapps-store/core/domain"
	"fjapps-store/core/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAppResponse(t *testing.T) {
	entry := domain.CatalogEntry{
		AppID:       123,
		DisplayName: "Jazz Radio",
		Metadata: domain.AppMetadata{
			ArtistID:       909253,
			ArtistName:     "Fjapps",
			BundleID:       "com.fjapps.jazz",
			FormattedPrice: "Free",
			Genres:         []string{"Music"},
			RatingCount:    12,
		},
	}

	app := ToAppResponse(entry)

	assert.Equal(t, int64(123), app.AppID)
	assert.Equal(t, "Jazz Radio", app.Name)
	assert.Equal(t, int64(909253), app.ArtistID)
	assert.Equal(t, "com.fjapps.jazz", app.BundleID)
	assert.Equal(t, "Free", app.FormattedPrice)
	assert.Equal(t, []string{"Music"}, app.Genres)
	assert.Equal(t, 12, app.RatingCount)
}

func TestToAppResponses_EmptyIsNotNil(t *testing.T) {
	apps := ToAppResponses(nil)

	require.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestToSearchResponse_KeepsOrder(t *testing.T) {
	result := domain.FilteredResult{
		Query:    "jazz+music",
		ArtistID: 909253,
		Entries:  []domain.CatalogEntry{{AppID: 789}, {AppID: 999}},
		Excluded: 2,
	}

	resp := ToSearchResponse("More", result)

	assert.Equal(t, "More", resp.Title)
	assert.Equal(t, "jazz+music", resp.Query)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 2, resp.Excluded)
	require.Len(t, resp.Apps, 2)
	assert.Equal(t, int64(789), resp.Apps[0].AppID)
	assert.Equal(t, int64(999), resp.Apps[1].AppID)
}

func TestToScreenResponse(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		snap := screen.Snapshot{
			Token:  3,
			State:  screen.Loaded,
			Result: domain.FilteredResult{Entries: []domain.CatalogEntry{{AppID: 1}}},
		}

		resp := ToScreenResponse("id-1", "Apps", snap)

		assert.Equal(t, "id-1", resp.ID)
		assert.Equal(t, "loaded", resp.State)
		assert.Equal(t, uint64(3), resp.Token)
		assert.Equal(t, 1, resp.Count)
		assert.Empty(t, resp.Error)
	})

	t.Run("failed", func(t *testing.T) {
		snap := screen.Snapshot{Token: 1, State: screen.Failed, Err: errors.New("catalog down")}

		resp := ToScreenResponse("id-2", "Apps", snap)

		assert.Equal(t, "failed", resp.State)
		assert.Equal(t, "catalog down", resp.Error)
		assert.NotNil(t, resp.Apps)
		assert.Zero(t, resp.Count)
	})
}

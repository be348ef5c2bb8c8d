// ABOUTME: Request DTOs for catalog screen API endpoints
// ABOUTME: Carries the configuration a host supplies when opening a screen

package requests

// OpenScreenRequest is the body of POST /screens
type OpenScreenRequest struct {
	// Title is shown by the host; it has no effect on the lookup
	Title string `json:"title,omitempty" maxLength:"200" doc:"Display title for the screen"`

	// SearchString is the human-typed phrase, spaces allowed
	SearchString string `json:"searchString" maxLength:"500" doc:"Search phrase; spaces are allowed"`

	// ArtistID scopes results to one publisher; 0 means unscoped
	ArtistID int64 `json:"artistId,omitempty" doc:"Publisher id to scope the search to; 0 for none"`

	// ExcludedAppIDs are removed from every result of this screen
	ExcludedAppIDs []int64 `json:"excludedAppIds,omitempty" maxItems:"1000" doc:"App ids never shown by this screen"`
}

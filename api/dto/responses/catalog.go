// ABOUTME: Response DTOs for catalog search and screen endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// AppResponse is one catalog entry
type AppResponse struct {
	AppID          int64    `json:"appId" doc:"Catalog app id"`
	Name           string   `json:"name" doc:"Display name"`
	ArtistID       int64    `json:"artistId,omitempty" doc:"Publisher id"`
	ArtistName     string   `json:"artistName,omitempty" doc:"Publisher name"`
	BundleID       string   `json:"bundleId,omitempty" doc:"Bundle identifier"`
	ArtworkURL     string   `json:"artworkUrl,omitempty" doc:"Icon artwork URL"`
	StoreURL       string   `json:"storeUrl,omitempty" doc:"Store page URL"`
	Price          float64  `json:"price" doc:"Price in the storefront currency"`
	FormattedPrice string   `json:"formattedPrice,omitempty" doc:"Price formatted for display"`
	Currency       string   `json:"currency,omitempty" doc:"ISO currency code"`
	Rating         float64  `json:"rating,omitempty" doc:"Average user rating"`
	RatingCount    int      `json:"ratingCount,omitempty" doc:"Number of user ratings"`
	Genres         []string `json:"genres,omitempty" doc:"Store genres"`
	Version        string   `json:"version,omitempty" doc:"Current version"`
}

// SearchResponse is the filtered result of a one-off catalog search
type SearchResponse struct {
	Title    string        `json:"title,omitempty" doc:"Title echoed from the request"`
	Query    string        `json:"query" doc:"Normalized search token sent to the catalog"`
	ArtistID int64         `json:"artistId,omitempty" doc:"Publisher scope, if any"`
	Count    int           `json:"count" doc:"Number of apps returned"`
	Excluded int           `json:"excluded" doc:"Number of catalog entries removed by the exclusion list"`
	Apps     []AppResponse `json:"apps" doc:"Matching apps in catalog order"`
}

// ScreenResponse describes a screen and its newest search
type ScreenResponse struct {
	ID    string        `json:"id" doc:"Screen id"`
	Title string        `json:"title" doc:"Display title"`
	State string        `json:"state" enum:"idle,loading,loaded,failed" doc:"State of the newest search"`
	Token uint64        `json:"token" doc:"Token of the newest search; 0 before the first"`
	Count int           `json:"count" doc:"Number of apps in the newest result"`
	Apps  []AppResponse `json:"apps" doc:"Apps of the newest result"`
	Error string        `json:"error,omitempty" doc:"Failure of the newest search"`
}

// SearchStartedResponse acknowledges an asynchronous screen search
type SearchStartedResponse struct {
	ID    string `json:"id" doc:"Screen id"`
	Token uint64 `json:"token" doc:"Token identifying this search"`
	State string `json:"state" doc:"State after starting the search"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status" doc:"Always ok when the server answers"`
	Screens int    `json:"screens" doc:"Number of open screens"`
}

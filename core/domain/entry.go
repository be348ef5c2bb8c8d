// ABOUTME: CatalogEntry domain model represents one application returned by the catalog
// ABOUTME: Metadata is carried through untouched for the presentation layer

package domain

// CatalogEntry is a single application in a catalog result
type CatalogEntry struct {
	// AppID is the store identifier of the application
	AppID int64

	// DisplayName is the application name shown in lists
	DisplayName string

	// Metadata is owned by the catalog and not interpreted by the search core
	Metadata AppMetadata
}

// AppMetadata holds catalog-provided details used for rendering
type AppMetadata struct {
	ArtistID       int64
	ArtistName     string
	BundleID       string
	ArtworkURL     string
	StoreURL       string
	Price          float64
	FormattedPrice string
	Currency       string
	Rating         float64
	RatingCount    int
	Genres         []string
	Version        string
}

// IsValid checks if the entry carries an identifier and a name
func (e *CatalogEntry) IsValid() bool {
	return e.AppID > 0 && e.DisplayName != ""
}

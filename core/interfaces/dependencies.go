// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the collaborators the catalog search core needs from the outside

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Catalog performs lookups against the remote app catalog
	Catalog CatalogClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records lookup outcomes; nil disables recording
	Metrics Metrics
}

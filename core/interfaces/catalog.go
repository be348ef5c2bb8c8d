// ABOUTME: Catalog client interface for the remote application directory
// ABOUTME: Implementations turn a scoped catalog query into ordered catalog entries

package interfaces

import (
	"context"

	"fjapps-store/core/domain"
)

// CatalogClient looks applications up in a remote catalog.
//
// Lookup returns entries in the order the catalog ranked them. Failures are
// reported as *errors.CatalogUnavailableError.
type CatalogClient interface {
	Lookup(ctx context.Context, query domain.CatalogQuery) ([]domain.CatalogEntry, error)
}

// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - catalog/itunes: CatalogClient backed by the iTunes Search API
// - http/standard: net/http client with bounded attempts, outbound rate limiting and request logging
// - logger/logrus: structured logger on logrus, optionally writing to a rotating file
// - metrics/prometheus: lookup and request collectors on a private registry
//
// # HTTP Client
//
// Requests are sent once by default. With WithMaxAttempts the client retries
// 5xx responses and transport errors with a short backoff:
//
//	client := standard.NewStandardHTTPClient(15*time.Second,
//	    standard.WithMaxAttempts(3),
//	    standard.WithRateLimit(20),
//	)
//
// # Catalog
//
//	catalog := itunes.NewClient(client, itunes.Config{Country: "gb"})
//	entries, err := catalog.Lookup(ctx, domain.CatalogQuery{Term: "jazz+music", ArtistID: 909253})
package infrastructure

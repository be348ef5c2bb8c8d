// Package core contains the business logic for the Fjapps Store catalog
// screen. It is framework-agnostic and can be embedded in any host.
//
// The core package is organized into several sub-packages:
//
// - domain: search requests, catalog entries, exclusion sets and results
// - query: turns a human-typed phrase into a catalog search token
// - catalog: scoped catalog lookup followed by exclusion filtering
// - screen: asynchronous screens with Idle/Loading/Loaded/Failed state
// - errors: typed errors mapped to HTTP statuses by the api package
// - interfaces: contracts for external dependencies (catalog, HTTP, logger, metrics)
//
// All external dependencies are injected via interfaces, so every service
// is testable in isolation.
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Catalog: itunes.NewClient(httpClient, itunes.Config{Country: "us"}),
//	    Logger:  logger,
//	}
//	service := catalog.NewService(deps, catalog.Options{Limit: 50})
//
//	s := screen.New(screen.Config{
//	    Title:          "More from Fjapps",
//	    SearchString:   "jazz music",
//	    ArtistID:       909253,
//	    ExcludedAppIDs: []int64{123, 456},
//	}, service, logger)
//
//	s.Search(func(c screen.Completion) {
//	    // c.State is Loaded or Failed; c.Result.Entries excludes 123 and 456
//	})
//	defer s.Discard()
package core

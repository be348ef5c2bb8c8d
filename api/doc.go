// Package api provides the HTTP API layer for the Fjapps Store host.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation, request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and middleware setup
// - handlers/: catalog search, screen lifecycle and health handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, per-IP rate limiting and request metrics
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Metrics:    metrics,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewCatalogHandler(service).RegisterRoutes(humaAPI)
//	handlers.NewScreenHandler(registry, logger).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format produced by Huma:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "invalid query: query: search string must not be empty"
//	}
//
// Invalid queries map to 400, unknown screens to 404, and catalog failures
// to 503, 429 or 502 depending on how the catalog failed.
package api

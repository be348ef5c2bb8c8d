// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"net/http"

	"fjapps-store/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsInvalidQuery(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if catalogErr, ok := errors.AsCatalogUnavailable(err); ok {
		switch {
		case catalogErr.StatusCode == 0 || catalogErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Catalog unavailable", err)
		case catalogErr.StatusCode == http.StatusTooManyRequests || catalogErr.StatusCode == http.StatusForbidden:
			// the store answers 403 when it throttles a client
			return huma.Error429TooManyRequests("Rate limited by catalog")
		default:
			return huma.Error502BadGateway("Unexpected catalog response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

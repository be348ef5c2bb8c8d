// ABOUTME: Custom error types for the catalog search core
// ABOUTME: Separates caller mistakes (invalid query) from remote catalog failures

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidQueryError is returned when a search request cannot be turned into
// a catalog lookup. Retrying the same request will not help.
type InvalidQueryError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query: %s: %s", e.Field, e.Message)
}

// CatalogUnavailableError represents a failed lookup against the remote
// catalog: transport failure, non-success status or an unreadable payload.
// StatusCode is zero when no HTTP response was received.
type CatalogUnavailableError struct {
	API        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *CatalogUnavailableError) Error() string {
	msg := fmt.Sprintf("catalog %s unavailable", e.API)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: %d", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s - %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidQuery checks if an error is an InvalidQueryError
func IsInvalidQuery(err error) bool {
	var queryErr *InvalidQueryError
	return errors.As(err, &queryErr)
}

// IsCatalogUnavailable checks if an error is a CatalogUnavailableError
func IsCatalogUnavailable(err error) bool {
	var catalogErr *CatalogUnavailableError
	return errors.As(err, &catalogErr)
}

// AsCatalogUnavailable extracts a CatalogUnavailableError from err's chain
func AsCatalogUnavailable(err error) (*CatalogUnavailableError, bool) {
	var catalogErr *CatalogUnavailableError
	if errors.As(err, &catalogErr) {
		return catalogErr, true
	}
	return nil, false
}

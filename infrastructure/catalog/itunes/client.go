// ABOUTME: iTunes Search API implementation of the catalog client
// ABOUTME: Searches the software catalog, or matches the term within one publisher's catalog when scoped

package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"fjapps-store/core/domain"
	coreerrors "fjapps-store/core/errors"
	"fjapps-store/core/interfaces"
)

const (
	apiName = "itunes"

	// DefaultBaseURL is the public iTunes Search API host
	DefaultBaseURL = "https://itunes.apple.com"

	// MaxLimit is the largest page the API serves
	MaxLimit = 200
)

// Config holds the client settings
type Config struct {
	BaseURL string
	Country string
}

// Client implements interfaces.CatalogClient against the iTunes Search API
type Client struct {
	http    interfaces.HTTPClient
	baseURL string
	country string
}

// NewClient creates a new iTunes catalog client
func NewClient(httpClient interfaces.HTTPClient, cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	return &Client{
		http:    httpClient,
		baseURL: base,
		country: strings.ToLower(cfg.Country),
	}
}

// searchResponse is the payload of /search and /lookup
type searchResponse struct {
	ResultCount int           `json:"resultCount"`
	Results     []searchEntry `json:"results"`
}

type searchEntry struct {
	WrapperType       string   `json:"wrapperType"`
	Kind              string   `json:"kind"`
	TrackID           int64    `json:"trackId"`
	TrackName         string   `json:"trackName"`
	ArtistID          int64    `json:"artistId"`
	ArtistName        string   `json:"artistName"`
	BundleID          string   `json:"bundleId"`
	ArtworkURL512     string   `json:"artworkUrl512"`
	ArtworkURL100     string   `json:"artworkUrl100"`
	ArtworkURL60      string   `json:"artworkUrl60"`
	TrackViewURL      string   `json:"trackViewUrl"`
	Price             float64  `json:"price"`
	FormattedPrice    string   `json:"formattedPrice"`
	Currency          string   `json:"currency"`
	AverageUserRating float64  `json:"averageUserRating"`
	UserRatingCount   int      `json:"userRatingCount"`
	Genres            []string `json:"genres"`
	Version           string   `json:"version"`
	Description       string   `json:"description"`
}

// Lookup searches the software catalog for q.Term. The term is placed in
// the /search URL as given; it must already be normalized. With q.ArtistID
// set the publisher's whole catalog is fetched from /lookup instead and the
// term is matched against it, keeping catalog order.
func (c *Client) Lookup(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogEntry, error) {
	if c.http == nil {
		return nil, &coreerrors.CatalogUnavailableError{API: apiName, Message: "HTTP client not configured"}
	}

	if q.ArtistID > 0 {
		return c.lookupPublisher(ctx, q)
	}

	results, err := c.fetch(ctx, c.searchURL(q))
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CatalogEntry, 0, len(results))
	for _, r := range results {
		// artist wrapper records carry no track
		entry := toEntry(r)
		if !entry.IsValid() {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// lookupPublisher reads the publisher's software catalog and keeps the
// entries whose text contains every word of the term.
func (c *Client) lookupPublisher(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogEntry, error) {
	results, err := c.fetch(ctx, c.lookupURL(q.ArtistID))
	if err != nil {
		return nil, err
	}

	match := newTermMatcher(q.Term)
	entries := make([]domain.CatalogEntry, 0, len(results))
	for _, r := range results {
		if r.ArtistID != q.ArtistID || !match.matches(r) {
			continue
		}
		entry := toEntry(r)
		if !entry.IsValid() {
			continue
		}
		entries = append(entries, entry)
		if q.Limit > 0 && len(entries) == q.Limit {
			break
		}
	}

	return entries, nil
}

func (c *Client) fetch(ctx context.Context, apiURL string) ([]searchEntry, error) {
	resp, err := c.http.Get(ctx, apiURL)
	if err != nil {
		return nil, &coreerrors.CatalogUnavailableError{API: apiName, Message: "request failed", Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.CatalogUnavailableError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.CatalogUnavailableError{API: apiName, StatusCode: resp.StatusCode(), Message: "failed to read response", Err: err}
	}

	var payload searchResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, &coreerrors.CatalogUnavailableError{API: apiName, StatusCode: resp.StatusCode(), Message: "malformed response", Err: err}
	}

	return payload.Results, nil
}

// searchURL builds the /search request. The term goes in verbatim.
func (c *Client) searchURL(q domain.CatalogQuery) string {
	params := url.Values{}
	params.Set("media", "software")
	params.Set("entity", "software")
	if c.country != "" {
		params.Set("country", c.country)
	}
	if q.Limit > 0 {
		limit := q.Limit
		if limit > MaxLimit {
			limit = MaxLimit
		}
		params.Set("limit", strconv.Itoa(limit))
	}

	return fmt.Sprintf("%s/search?term=%s&%s", c.baseURL, q.Term, params.Encode())
}

// lookupURL builds the /lookup request for a publisher's software catalog.
// It always asks for MaxLimit entries so the term can be matched against as
// much of the catalog as the API serves.
func (c *Client) lookupURL(artistID int64) string {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(artistID, 10))
	params.Set("entity", "software")
	params.Set("limit", strconv.Itoa(MaxLimit))
	if c.country != "" {
		params.Set("country", c.country)
	}

	return fmt.Sprintf("%s/lookup?%s", c.baseURL, params.Encode())
}

// termMatcher checks catalog entries against the words of a normalized term
type termMatcher struct {
	fold  cases.Caser
	words []string
}

func newTermMatcher(term string) termMatcher {
	decoded, err := url.QueryUnescape(term)
	if err != nil {
		decoded = strings.ReplaceAll(term, "+", " ")
	}

	fold := cases.Fold()
	return termMatcher{
		fold:  fold,
		words: strings.Fields(fold.String(decoded)),
	}
}

// matches reports whether every word occurs in the entry's name, genres or
// description. Matching ignores case.
func (m termMatcher) matches(r searchEntry) bool {
	text := m.fold.String(r.TrackName + " " + strings.Join(r.Genres, " ") + " " + r.Description)
	for _, w := range m.words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func toEntry(r searchEntry) domain.CatalogEntry {
	artwork := r.ArtworkURL512
	if artwork == "" {
		artwork = r.ArtworkURL100
	}
	if artwork == "" {
		artwork = r.ArtworkURL60
	}

	return domain.CatalogEntry{
		AppID:       r.TrackID,
		DisplayName: r.TrackName,
		Metadata: domain.AppMetadata{
			ArtistID:       r.ArtistID,
			ArtistName:     r.ArtistName,
			BundleID:       r.BundleID,
			ArtworkURL:     artwork,
			StoreURL:       r.TrackViewURL,
			Price:          r.Price,
			FormattedPrice: r.FormattedPrice,
			Currency:       r.Currency,
			Rating:         r.AverageUserRating,
			RatingCount:    r.UserRatingCount,
			Genres:         r.Genres,
			Version:        r.Version,
		},
	}
}

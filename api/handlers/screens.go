// ABOUTME: Screen lifecycle handlers for the Huma API
// ABOUTME: Lets a host open a catalog screen, run searches on it, poll it and discard it

package handlers

import (
	"context"
	"net/http"

	"fjapps-store/api/dto/mappers"
	"fjapps-store/api/dto/requests"
	"fjapps-store/api/dto/responses"
	"fjapps-store/core/domain"
	"fjapps-store/core/interfaces"
	"fjapps-store/core/screen"
	"github.com/danielgtaylor/huma/v2"
)

// ScreenRegistry keeps the screens opened through the API
type ScreenRegistry interface {
	Open(cfg screen.Config) (string, *screen.Screen)
	Get(id string) (*screen.Screen, error)
	Close(id string) error
	Len() int
}

// ScreenHandler handles screen lifecycle requests
type ScreenHandler struct {
	registry ScreenRegistry
	logger   interfaces.Logger
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(registry ScreenRegistry, logger interfaces.Logger) *ScreenHandler {
	return &ScreenHandler{
		registry: registry,
		logger:   logger,
	}
}

// RegisterRoutes registers all screen routes
func (h *ScreenHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "openScreen",
		Method:        http.MethodPost,
		Path:          "/screens",
		Summary:       "Open a catalog screen",
		Description:   "Creates a screen with a fixed title, search phrase, publisher scope and exclusion list",
		Tags:          []string{"Screens"},
		DefaultStatus: http.StatusCreated,
	}, h.Open)

	huma.Register(api, huma.Operation{
		OperationID:   "startScreenSearch",
		Method:        http.MethodPost,
		Path:          "/screens/{id}/search",
		Summary:       "Start a search on a screen",
		Description:   "Starts an asynchronous lookup; poll the screen for its outcome",
		Tags:          []string{"Screens"},
		DefaultStatus: http.StatusAccepted,
	}, h.StartSearch)

	huma.Register(api, huma.Operation{
		OperationID: "getScreen",
		Method:      http.MethodGet,
		Path:        "/screens/{id}",
		Summary:     "Get a screen",
		Description: "Returns the state and result of the screen's newest search",
		Tags:        []string{"Screens"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "discardScreen",
		Method:        http.MethodDelete,
		Path:          "/screens/{id}",
		Summary:       "Discard a screen",
		Description:   "Cancels pending lookups and forgets the screen",
		Tags:          []string{"Screens"},
		DefaultStatus: http.StatusNoContent,
	}, h.Discard)
}

// OpenScreenInput defines the input for opening a screen
type OpenScreenInput struct {
	Body requests.OpenScreenRequest
}

// ScreenOutput wraps a screen description
type ScreenOutput struct {
	Body responses.ScreenResponse
}

// Open handles POST /screens
func (h *ScreenHandler) Open(ctx context.Context, input *OpenScreenInput) (*ScreenOutput, error) {
	req := domain.SearchRequest{
		Title:    input.Body.Title,
		RawQuery: input.Body.SearchString,
		ArtistID: input.Body.ArtistID,
	}
	if err := req.Validate(); err != nil {
		return nil, toHumaError(err)
	}

	id, s := h.registry.Open(screen.Config{
		Title:          input.Body.Title,
		SearchString:   input.Body.SearchString,
		ArtistID:       input.Body.ArtistID,
		ExcludedAppIDs: input.Body.ExcludedAppIDs,
	})

	if h.logger != nil {
		h.logger.Info("Screen opened", map[string]interface{}{
			"screen_id": id,
			"artist_id": req.ArtistID,
			"excluded":  s.Exclusions().Len(),
		})
	}

	return &ScreenOutput{Body: *mappers.ToScreenResponse(id, s.Title(), s.Snapshot())}, nil
}

// ScreenPathInput identifies a screen
type ScreenPathInput struct {
	ID string `path:"id" doc:"Screen id"`
}

// StartSearchOutput acknowledges a started search
type StartSearchOutput struct {
	Body responses.SearchStartedResponse
}

// StartSearch handles POST /screens/{id}/search
func (h *ScreenHandler) StartSearch(ctx context.Context, input *ScreenPathInput) (*StartSearchOutput, error) {
	s, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	token := s.Search(func(c screen.Completion) {
		if h.logger == nil {
			return
		}
		h.logger.Debug("Screen search completed", map[string]interface{}{
			"screen_id": input.ID,
			"token":     uint64(c.Token),
			"state":     c.State.String(),
			"count":     len(c.Result.Entries),
		})
	})

	return &StartSearchOutput{Body: responses.SearchStartedResponse{
		ID:    input.ID,
		Token: uint64(token),
		State: s.Snapshot().State.String(),
	}}, nil
}

// Get handles GET /screens/{id}
func (h *ScreenHandler) Get(ctx context.Context, input *ScreenPathInput) (*ScreenOutput, error) {
	s, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ScreenOutput{Body: *mappers.ToScreenResponse(input.ID, s.Title(), s.Snapshot())}, nil
}

// Discard handles DELETE /screens/{id}
func (h *ScreenHandler) Discard(ctx context.Context, input *ScreenPathInput) (*struct{}, error) {
	if err := h.registry.Close(input.ID); err != nil {
		return nil, toHumaError(err)
	}

	if h.logger != nil {
		h.logger.Info("Screen discarded", map[string]interface{}{
			"screen_id": input.ID,
		})
	}

	return nil, nil
}

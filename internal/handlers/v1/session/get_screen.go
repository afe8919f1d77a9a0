package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/atm-server/internal/service"
)

// GetScreenInput is the Huma input for reading the current screen.
type GetScreenInput struct{}

// GetScreenOutput is the response for reading the current screen.
type GetScreenOutput struct {
	Body Directive
}

// screenViewer is the interface for reading the current directive.
type screenViewer interface {
	Current() service.Directive
}

// GetScreenHandler handles GET /v1/session/screen.
type GetScreenHandler struct {
	Session screenViewer
}

// NewGetScreenHandler creates a new GetScreenHandler.
func NewGetScreenHandler(session screenViewer) *GetScreenHandler {
	return &GetScreenHandler{Session: session}
}

// Register registers the screen endpoint with the Huma API.
func (h *GetScreenHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session-screen",
		Method:      http.MethodGet,
		Path:        "/v1/session/screen",
		Summary:     "Read the current screen",
		Description: "Returns the rendering directive for the current session state without applying any event.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *GetScreenHandler) handle(ctx context.Context, input *GetScreenInput) (*GetScreenOutput, error) {
	return &GetScreenOutput{Body: toDirective(h.Session.Current())}, nil
}

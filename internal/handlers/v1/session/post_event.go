package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/service"
)

// PostEventBody is the request body for forwarding one UI event.
type PostEventBody struct {
	Type     string `json:"type" required:"true" enum:"submit-text,select-action" doc:"Event type"`
	Text     string `json:"text,omitempty" doc:"Submitted field contents, for submit-text"`
	ActionID string `json:"actionId,omitempty" doc:"Chosen action identifier, for select-action"`
}

// PostEventInput is the Huma input for forwarding one UI event.
type PostEventInput struct {
	Body PostEventBody
}

// PostEventOutput is the response for forwarding one UI event.
type PostEventOutput struct {
	Status int
	Body   Directive
}

// eventProcessor is the interface for applying session events.
type eventProcessor interface {
	Process(ctx context.Context, event service.Event) (service.Directive, error)
}

// PostEventHandler handles POST /v1/session/event.
type PostEventHandler struct {
	Operator eventProcessor
}

// NewPostEventHandler creates a new PostEventHandler.
func NewPostEventHandler(op eventProcessor) *PostEventHandler {
	return &PostEventHandler{Operator: op}
}

// Register registers the event endpoint with the Huma API.
func (h *PostEventHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-session-event",
		Method:      http.MethodPost,
		Path:        "/v1/session/event",
		Summary:     "Forward a UI event",
		Description: "Applies one discrete input event to the session and returns the rendering directive for what the UI should now present.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func parsePostEventInput(input *PostEventInput) (service.Event, error) {
	switch input.Body.Type {
	case "submit-text":
		return service.SubmitText(input.Body.Text), nil
	case "select-action":
		if input.Body.ActionID == "" {
			return service.Event{}, huma.NewError(http.StatusBadRequest, "actionId required for select-action", nil)
		}
		return service.SelectAction(service.Action(input.Body.ActionID)), nil
	default:
		return service.Event{}, huma.NewError(http.StatusBadRequest, "unknown event type", nil)
	}
}

func (h *PostEventHandler) handle(ctx context.Context, input *PostEventInput) (*PostEventOutput, error) {
	logData := logging.GetLogData(ctx)

	event, err := parsePostEventInput(input)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("eventType", input.Body.Type)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("applyEventMs")
	}
	directive, err := h.Operator.Process(ctx, event)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to apply event", err)
	}

	if logData != nil {
		logData.AddData("screenState", directive.Screen.String())
		if kind := directive.ErrorKind(); kind != "" {
			logData.AddData("errorKind", kind)
		}
	}

	return &PostEventOutput{
		Status: http.StatusOK,
		Body:   toDirective(directive),
	}, nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/atm-server/internal/service"
	"github.com/carson-networks/atm-server/internal/storage"
)

// mockEventProcessor is a mock for eventProcessor.
type mockEventProcessor struct {
	mock.Mock
}

func (m *mockEventProcessor) Process(ctx context.Context, event service.Event) (service.Directive, error) {
	args := m.Called(ctx, event)
	directive, _ := args.Get(0).(service.Directive)
	return directive, args.Error(1)
}

func newTestAPI(t *testing.T, op eventProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewPostEventHandler(op).Register(api)
	return api
}

// syncProcessor applies events straight to a real session, bypassing the
// queue, which is enough for handler-level tests.
type syncProcessor struct {
	session *service.Session
}

func (p *syncProcessor) Process(ctx context.Context, event service.Event) (service.Directive, error) {
	return p.session.Apply(event), nil
}

func newRealSession(t *testing.T) *service.Session {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return service.NewSession(storage.NewSeededAccountStore(), service.NewCashReserve(500), service.EnvelopeSlot{}, logger)
}

// -- parsePostEventInput unit tests --

func TestParsePostEventInput_SubmitText(t *testing.T) {
	input := &PostEventInput{
		Body: PostEventBody{Type: "submit-text", Text: "12345"},
	}

	event, err := parsePostEventInput(input)
	assert.NoError(t, err)
	assert.Equal(t, service.EventSubmitText, event.Kind)
	assert.Equal(t, "12345", event.Text)
}

func TestParsePostEventInput_SelectAction(t *testing.T) {
	input := &PostEventInput{
		Body: PostEventBody{Type: "select-action", ActionID: "withdraw"},
	}

	event, err := parsePostEventInput(input)
	assert.NoError(t, err)
	assert.Equal(t, service.EventSelectAction, event.Kind)
	assert.Equal(t, service.ActionWithdraw, event.Action)
}

func TestParsePostEventInput_SelectActionMissingID(t *testing.T) {
	input := &PostEventInput{
		Body: PostEventBody{Type: "select-action"},
	}

	_, err := parsePostEventInput(input)
	assert.Error(t, err)
}

// -- HTTP tests --

func TestPostEvent_SubmitText(t *testing.T) {
	mockOp := &mockEventProcessor{}
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(e service.Event) bool {
		return e.Kind == service.EventSubmitText && e.Text == "12345"
	})).Return(service.Directive{
		Screen:    service.ScreenLogin,
		Prompt:    "Account: 12345\nPlease enter your PIN:",
		MaskInput: true,
	}, nil)

	api := newTestAPI(t, mockOp)
	resp := api.Post("/v1/session/event", map[string]any{
		"type": "submit-text",
		"text": "12345",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body Directive
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "LOGIN", body.ScreenState)
	assert.True(t, body.MaskInput)
	assert.Empty(t, body.ErrorKind)
	mockOp.AssertExpectations(t)
}

func TestPostEvent_ProcessorError(t *testing.T) {
	mockOp := &mockEventProcessor{}
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(service.Directive{}, errors.New("queue stopped"))

	api := newTestAPI(t, mockOp)
	resp := api.Post("/v1/session/event", map[string]any{
		"type": "submit-text",
		"text": "12345",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestPostEvent_UnknownType(t *testing.T) {
	api := newTestAPI(t, &mockEventProcessor{})
	resp := api.Post("/v1/session/event", map[string]any{
		"type": "press-key",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

// A full login against a real session surfaces the error taxonomy in the
// response body.
func TestPostEvent_AuthFailureErrorKind(t *testing.T) {
	session := newRealSession(t)
	api := newTestAPI(t, &syncProcessor{session: session})

	resp := api.Post("/v1/session/event", map[string]any{
		"type": "submit-text",
		"text": "12345",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/v1/session/event", map[string]any{
		"type": "submit-text",
		"text": "9999",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	var body Directive
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "LOGIN", body.ScreenState)
	assert.Equal(t, "authentication", body.ErrorKind)
	assert.Equal(t, "Invalid account number or PIN. Please try again.", body.PromptText)
}

// -- GET screen --

func TestGetScreen_CurrentDirective(t *testing.T) {
	session := newRealSession(t)
	_, api := humatest.New(t)
	NewGetScreenHandler(session).Register(api)

	resp := api.Get("/v1/session/screen")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Directive
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "LOGIN", body.ScreenState)
	assert.Contains(t, body.PromptText, "account number")
	assert.False(t, body.MaskInput)
}

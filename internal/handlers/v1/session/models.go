package session

import (
	"github.com/carson-networks/atm-server/internal/service"
)

// Directive is the API response model for a rendering directive.
type Directive struct {
	ScreenState      string   `json:"screenState" doc:"Current screen: LOGIN, MAIN_MENU, VIEWING_BALANCE, WITHDRAWING, DEPOSITING"`
	PromptText       string   `json:"promptText" doc:"Text the adapter should display verbatim"`
	AvailableActions []string `json:"availableActions" doc:"Action identifiers currently valid"`
	MaskInput        bool     `json:"maskInput" doc:"Whether typed characters must be obscured (PIN entry)"`
	ErrorKind        string   `json:"errorKind,omitempty" doc:"Failure classification of the last event, empty on success"`
}

func toDirective(d service.Directive) Directive {
	actions := make([]string, len(d.Actions))
	for i, action := range d.Actions {
		actions[i] = string(action)
	}
	return Directive{
		ScreenState:      d.Screen.String(),
		PromptText:       d.Prompt,
		AvailableActions: actions,
		MaskInput:        d.MaskInput,
		ErrorKind:        d.ErrorKind(),
	}
}

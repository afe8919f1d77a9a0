package service

// EventKind discriminates the inbound event types the UI adapter can
// forward.
type EventKind int8

const (
	EventSubmitText EventKind = iota
	EventSelectAction
	EventTick
)

// Action identifies a button or menu choice the adapter can present.
type Action string

const (
	ActionBalance        Action = "balance"
	ActionWithdraw       Action = "withdraw"
	ActionDeposit        Action = "deposit"
	ActionExit           Action = "exit"
	ActionBack           Action = "back"
	ActionConfirmDeposit Action = "confirm-deposit"
	ActionCancelDeposit  Action = "cancel-deposit"
	ActionCustomAmount   Action = "custom-amount"

	// Preset withdrawal amounts, one action per fixed button.
	ActionAmount20  Action = "amount-20"
	ActionAmount40  Action = "amount-40"
	ActionAmount60  Action = "amount-60"
	ActionAmount100 Action = "amount-100"
	ActionAmount200 Action = "amount-200"
)

// presetAmounts maps the fixed withdrawal buttons to their values.
var presetAmounts = map[Action]int64{
	ActionAmount20:  20,
	ActionAmount40:  40,
	ActionAmount60:  60,
	ActionAmount100: 100,
	ActionAmount200: 200,
}

// Event is one discrete input forwarded by the UI adapter. Exactly one
// of Text, Action, or Gen is meaningful depending on Kind.
type Event struct {
	Kind   EventKind
	Text   string
	Action Action
	Gen    uint64
}

// SubmitText builds a text submission event.
func SubmitText(text string) Event {
	return Event{Kind: EventSubmitText, Text: text}
}

// SelectAction builds a menu choice event.
func SelectAction(action Action) Event {
	return Event{Kind: EventSelectAction, Action: action}
}

// Tick builds the elapsed-delay notification for the auto-return
// mechanism. Gen pins the tick to the transaction that scheduled it; a
// tick whose generation is stale is ignored.
func Tick(gen uint64) Event {
	return Event{Kind: EventTick, Gen: gen}
}

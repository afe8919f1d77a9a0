package service

// ScreenState is the closed set of screens the machine can be on.
type ScreenState int8

const (
	ScreenLogin ScreenState = iota
	ScreenMainMenu
	ScreenBalance
	ScreenWithdraw
	ScreenDeposit
)

func (s ScreenState) String() string {
	switch s {
	case ScreenLogin:
		return "LOGIN"
	case ScreenMainMenu:
		return "MAIN_MENU"
	case ScreenBalance:
		return "VIEWING_BALANCE"
	case ScreenWithdraw:
		return "WITHDRAWING"
	case ScreenDeposit:
		return "DEPOSITING"
	default:
		return "UNKNOWN"
	}
}

// LoginStep is the sub-step within the login screen.
type LoginStep int8

const (
	StepAccountNumber LoginStep = iota
	StepPIN
)

func (s LoginStep) String() string {
	if s == StepPIN {
		return "AWAITING_PIN"
	}
	return "AWAITING_ACCOUNT_NUMBER"
}

// Directive describes what the UI adapter should present after an
// event: the screen, the text to show, the actions currently valid, and
// whether typed input must be obscured. Err carries the domain error the
// event ran into, nil on success; AutoReturn asks the adapter's runner
// to deliver Tick(Gen) after the configured delay.
type Directive struct {
	Screen     ScreenState
	Prompt     string
	Actions    []Action
	MaskInput  bool
	Err        error
	AutoReturn bool
	Gen        uint64
}

// ErrorKind returns a stable tag for the directive's error, empty on
// success.
func (d Directive) ErrorKind() string {
	switch d.Err {
	case nil:
		return ""
	case ErrParse:
		return "parse"
	case ErrAuthentication:
		return "authentication"
	case ErrValidation:
		return "validation"
	case ErrInsufficientFunds:
		return "insufficient-funds"
	case ErrInsufficientCash:
		return "insufficient-cash"
	case ErrSessionInvariant:
		return "session-invariant"
	default:
		return "unknown"
	}
}

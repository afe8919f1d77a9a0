package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/storage"
)

// Screen texts. The adapter renders these verbatim.
const (
	msgEnterAccountNumber = "Welcome!\nPlease enter your account number:"
	msgEnterPIN           = "Account: %d\nPlease enter your PIN:"
	msgEmptyInput         = "Input cannot be empty. Please enter a value."
	msgNumbersOnly        = "Invalid input. Please enter numbers only."
	msgAuthFailed         = "Invalid account number or PIN. Please try again."
	msgMainMenu           = "Authentication successful!\n\nATM Main Menu:\n1 - View my balance\n2 - Withdraw cash\n3 - Deposit funds\n4 - Exit"
	msgBalance            = "Balance Information:\n- Available balance: $%s\n- Total balance:     $%s"
	msgWithdrawMenu       = "Withdrawal Menu:\nChoose a withdrawal amount (multiples of 20):"
	msgCustomAmount       = "Enter custom withdrawal amount (multiples of 20):"
	msgBadAmount          = "Invalid amount. Please enter a number."
	msgNotMultiple        = "Withdrawal amounts must be positive multiples of $20."
	msgInsufficientFunds  = "Insufficient funds in your account. Please choose a smaller amount."
	msgInsufficientCash   = "Insufficient cash available in the ATM. Please choose a smaller amount."
	msgDispensed          = "Your cash of $%s has been dispensed.\nPlease take your cash now."
	msgDepositPrompt      = "Please enter the deposit amount (e.g., 100.00 for $100.00):"
	msgDepositPositive    = "Deposit amount must be positive."
	msgDeposited          = "Your deposit of $%s has been credited to your account."
	msgNoEnvelope         = "You did not insert an envelope, so your transaction has been canceled."
	msgNotLoggedIn        = "Error: Not logged in. Please log in."
	msgGoodbye            = "Thank you for using the ATM. Goodbye!"
)

// Session is the single live transaction context: it owns the current
// screen, the login sub-step, the pending account number captured before
// PIN entry, and the bound account once authentication succeeds. Every
// inbound event is handled to completion under one mutex, so account and
// reserve state have exactly one writer.
//
// The generation counter implements the cancellable auto-return: each
// explicit event bumps it, a completed transaction stamps its directive
// with the current value, and a Tick carrying anything but that value is
// a stale timer firing and does nothing.
type Session struct {
	mu       sync.Mutex
	accounts storage.IAccountStore
	cash     *CashReserve
	slot     IDepositSlot
	logger   *logrus.Logger

	id             uuid.UUID
	screen         ScreenState
	step           LoginStep
	pendingAccount int
	account        *storage.Account
	gen            uint64
}

// NewSession creates a session in the unauthenticated state.
func NewSession(accounts storage.IAccountStore, cash *CashReserve, slot IDepositSlot, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		accounts: accounts,
		cash:     cash,
		slot:     slot,
		logger:   logger,
		id:       uuid.Must(uuid.NewV4()),
		screen:   ScreenLogin,
		step:     StepAccountNumber,
	}
}

// Apply handles one inbound event and returns the directive describing
// what the UI should now present. Errors never propagate: every failure
// is folded into the directive.
func (s *Session) Apply(event Event) Directive {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.Kind == EventTick {
		return s.handleTick(event.Gen)
	}

	// Any explicit action supersedes a pending auto-return.
	s.gen++

	switch event.Kind {
	case EventSubmitText:
		return s.handleText(strings.TrimSpace(event.Text))
	case EventSelectAction:
		return s.handleAction(event.Action)
	}
	return s.render("", nil)
}

// Current returns the directive for the present state without mutating
// anything.
func (s *Session) Current() Directive {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render("", nil)
}

func (s *Session) handleTick(gen uint64) Directive {
	if gen != s.gen {
		// Stale timer; a newer event already took precedence.
		return s.render("", nil)
	}
	s.gen++
	if s.account == nil {
		s.resetLogin()
		return s.render("", nil)
	}
	s.screen = ScreenMainMenu
	return s.render("", nil)
}

func (s *Session) handleText(text string) Directive {
	switch s.screen {
	case ScreenLogin:
		return s.handleLoginText(text)
	case ScreenWithdraw:
		amount, err := decimal.NewFromString(text)
		if err != nil {
			return s.render(msgBadAmount, ErrParse)
		}
		return s.withdraw(amount)
	case ScreenDeposit:
		return s.deposit(text)
	default:
		// No text is expected on the menu or balance screens.
		return s.render("", nil)
	}
}

func (s *Session) handleLoginText(text string) Directive {
	if text == "" {
		return s.render(msgEmptyInput, ErrParse)
	}

	if s.step == StepAccountNumber {
		number, err := strconv.Atoi(text)
		if err != nil {
			return s.render(msgNumbersOnly, ErrParse)
		}
		s.pendingAccount = number
		s.step = StepPIN
		return s.render("", nil)
	}

	pin, err := strconv.Atoi(text)
	if err != nil {
		// Unlike the account-number step, a bad PIN entry restarts the
		// whole login, pending account number included.
		s.resetLogin()
		return s.render(msgNumbersOnly, ErrParse)
	}

	if !s.accounts.Authenticate(s.pendingAccount, pin) {
		s.resetLogin()
		return s.render(msgAuthFailed, ErrAuthentication)
	}

	account, _ := s.accounts.Lookup(s.pendingAccount)
	s.account = account
	s.screen = ScreenMainMenu
	s.logger.WithFields(logrus.Fields{
		"sessionID": s.id.String(),
		"account":   account.Number(),
	}).Info("Session.login")
	return s.render("", nil)
}

func (s *Session) handleAction(action Action) Directive {
	if action == ActionExit {
		return s.exit()
	}

	switch s.screen {
	case ScreenMainMenu:
		switch action {
		case ActionBalance:
			if !s.requireAccount() {
				return s.render(msgNotLoggedIn, ErrSessionInvariant)
			}
			s.screen = ScreenBalance
		case ActionWithdraw:
			if !s.requireAccount() {
				return s.render(msgNotLoggedIn, ErrSessionInvariant)
			}
			s.screen = ScreenWithdraw
		case ActionDeposit:
			if !s.requireAccount() {
				return s.render(msgNotLoggedIn, ErrSessionInvariant)
			}
			s.screen = ScreenDeposit
		}
	case ScreenBalance:
		if action == ActionBack {
			s.screen = ScreenMainMenu
		}
	case ScreenWithdraw:
		if preset, ok := presetAmounts[action]; ok {
			return s.withdraw(decimal.NewFromInt(preset))
		}
		switch action {
		case ActionCustomAmount:
			return s.render(msgCustomAmount, nil)
		case ActionBack:
			s.screen = ScreenMainMenu
		}
	case ScreenDeposit:
		switch action {
		case ActionConfirmDeposit:
			// Confirm arrives without field contents; the adapter is
			// expected to submit the typed amount as text instead.
			return s.render(msgBadAmount, ErrParse)
		case ActionCancelDeposit, ActionBack:
			s.screen = ScreenMainMenu
		}
	}

	return s.render("", nil)
}

func (s *Session) withdraw(amount decimal.Decimal) Directive {
	if !s.requireAccount() {
		return s.render(msgNotLoggedIn, ErrSessionInvariant)
	}

	// The remainder check runs against the raw amount: 25 is rejected
	// here even though it truncates to a whole bill count.
	if !amount.IsPositive() || !amount.Mod(billDenomination).IsZero() {
		return s.render(msgNotMultiple, ErrValidation)
	}
	if s.account.AvailableBalance().LessThan(amount) {
		return s.render(msgInsufficientFunds, ErrInsufficientFunds)
	}
	if !s.cash.Sufficient(amount) {
		return s.render(msgInsufficientCash, ErrInsufficientCash)
	}

	if err := s.cash.Dispense(amount); err != nil {
		return s.render(msgInsufficientCash, ErrInsufficientCash)
	}
	s.account.Debit(amount)

	s.logger.WithFields(logrus.Fields{
		"sessionID": s.id.String(),
		"account":   s.account.Number(),
		"amount":    amount.StringFixed(2),
	}).Info("Session.withdrawal")
	return s.renderAutoReturn(fmt.Sprintf(msgDispensed, amount.StringFixed(2)))
}

func (s *Session) deposit(text string) Directive {
	if !s.requireAccount() {
		return s.render(msgNotLoggedIn, ErrSessionInvariant)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return s.render(msgBadAmount, ErrParse)
	}
	if !amount.IsPositive() {
		return s.render(msgDepositPositive, ErrValidation)
	}

	if !s.slot.EnvelopeReceived() {
		return s.renderAutoReturn(msgNoEnvelope)
	}

	s.account.Credit(amount)
	s.logger.WithFields(logrus.Fields{
		"sessionID": s.id.String(),
		"account":   s.account.Number(),
		"amount":    amount.StringFixed(2),
	}).Info("Session.deposit")
	return s.renderAutoReturn(fmt.Sprintf(msgDeposited, amount.StringFixed(2)))
}

// requireAccount reports whether an account is bound, falling back to
// the login screen when the session invariant is broken.
func (s *Session) requireAccount() bool {
	if s.account != nil {
		return true
	}
	s.logger.WithField("sessionID", s.id.String()).Warn("Session.invariant: no bound account")
	s.resetLogin()
	return false
}

func (s *Session) resetLogin() {
	s.screen = ScreenLogin
	s.step = StepAccountNumber
	s.pendingAccount = 0
	s.account = nil
}

func (s *Session) exit() Directive {
	if s.account != nil {
		s.logger.WithFields(logrus.Fields{
			"sessionID": s.id.String(),
			"account":   s.account.Number(),
		}).Info("Session.exit")
	}
	s.resetLogin()
	s.id = uuid.Must(uuid.NewV4())
	return s.render(msgGoodbye, nil)
}

func (s *Session) render(message string, err error) Directive {
	directive := Directive{
		Screen:    s.screen,
		Prompt:    message,
		Actions:   s.availableActions(),
		MaskInput: s.screen == ScreenLogin && s.step == StepPIN,
		Err:       err,
		Gen:       s.gen,
	}
	if message == "" {
		directive.Prompt = s.defaultPrompt()
	}
	return directive
}

func (s *Session) renderAutoReturn(message string) Directive {
	directive := s.render(message, nil)
	directive.AutoReturn = true
	return directive
}

func (s *Session) defaultPrompt() string {
	switch s.screen {
	case ScreenLogin:
		if s.step == StepPIN {
			return fmt.Sprintf(msgEnterPIN, s.pendingAccount)
		}
		return msgEnterAccountNumber
	case ScreenMainMenu:
		return msgMainMenu
	case ScreenBalance:
		if s.account == nil {
			return msgNotLoggedIn
		}
		return fmt.Sprintf(msgBalance,
			s.account.AvailableBalance().StringFixed(2),
			s.account.TotalBalance().StringFixed(2))
	case ScreenWithdraw:
		return msgWithdrawMenu
	case ScreenDeposit:
		return msgDepositPrompt
	default:
		return ""
	}
}

func (s *Session) availableActions() []Action {
	switch s.screen {
	case ScreenMainMenu:
		return []Action{ActionBalance, ActionWithdraw, ActionDeposit, ActionExit}
	case ScreenBalance:
		return []Action{ActionBack}
	case ScreenWithdraw:
		return []Action{
			ActionAmount20, ActionAmount40, ActionAmount60,
			ActionAmount100, ActionAmount200,
			ActionCustomAmount, ActionBack,
		}
	case ScreenDeposit:
		return []Action{ActionConfirmDeposit, ActionCancelDeposit, ActionBack}
	default:
		return nil
	}
}

package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/storage"
)

// Service holds the machine's moving parts: the cash reserve, the
// deposit slot, and the one live session.
type Service struct {
	Cash    *CashReserve
	Slot    IDepositSlot
	Session *Session
}

// NewService wires a service against the given account store.
func NewService(accounts storage.IAccountStore, initialBills int, logger *logrus.Logger) *Service {
	cash := NewCashReserve(initialBills)
	slot := EnvelopeSlot{}
	return &Service{
		Cash:    cash,
		Slot:    slot,
		Session: NewSession(accounts, cash, slot, logger),
	}
}

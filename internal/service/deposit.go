package service

// IDepositSlot defines the interface for the deposit envelope sensor.
// This abstraction allows swapping the implementation (e.g. real slot
// hardware) without changing callers.
//
//go:generate mockery --name IDepositSlot --output mock_IDepositSlot.go
type IDepositSlot interface {
	EnvelopeReceived() bool
}

// EnvelopeSlot is the simulated deposit slot. There is no physical
// sensor, so an envelope is always considered received.
type EnvelopeSlot struct{}

// Ensure EnvelopeSlot implements IDepositSlot at compile time.
var _ IDepositSlot = EnvelopeSlot{}

func (EnvelopeSlot) EnvelopeReceived() bool {
	return true
}

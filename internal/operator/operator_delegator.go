package operator

import (
	"context"
	"sync"
	"time"

	"github.com/carson-networks/atm-server/internal/service"
)

// OperatorDelegator manages the queue, starts/stops the Operator, and
// enqueues events. It runs exactly one worker so each event is handled
// to completion before the next, keeping a single writer over account
// and reserve state.
type OperatorDelegator struct {
	session  *service.Session
	queue    chan EventItem
	done     chan struct{}
	delay    time.Duration
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(session *service.Session, delay time.Duration) *OperatorDelegator {
	return &OperatorDelegator{
		session: session,
		queue:   make(chan EventItem, 64),
		done:    make(chan struct{}),
		delay:   delay,
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.session, d.queue, d.done, d.delay)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
		d.wg.Wait()
	})
}

// Process enqueues one event and waits for its directive.
func (d *OperatorDelegator) Process(ctx context.Context, event service.Event) (service.Directive, error) {
	respCh := make(chan EventResponse, 1)
	item := EventItem{
		ctx:      ctx,
		event:    event,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-ctx.Done():
		return service.Directive{}, ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.directive, nil
	case <-ctx.Done():
		return service.Directive{}, ctx.Err()
	}
}

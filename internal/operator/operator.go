package operator

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/service"
)

// Operator is the worker that processes session events from the queue.
// It also owns the auto-return timer: when a directive asks for an
// auto-return it arms a deferred tick, and any later explicit event
// stops that timer before being applied. A timer that fires anyway is
// additionally rejected inside the session by its generation stamp.
type Operator struct {
	session *service.Session
	queue   chan EventItem
	done    chan struct{}
	delay   time.Duration
	pending *time.Timer
}

func NewOperator(session *service.Session, queue chan EventItem, done chan struct{}, delay time.Duration) *Operator {
	return &Operator{
		session: session,
		queue:   queue,
		done:    done,
		delay:   delay,
	}
}

// Run processes items until the delegator is stopped.
func (o *Operator) Run() {
	for {
		select {
		case item := <-o.queue:
			o.processItem(item)
		case <-o.done:
			o.stopPending()
			return
		}
	}
}

func (o *Operator) processItem(item EventItem) {
	if item.ctx != nil && item.ctx.Err() != nil {
		// Requester gave up before the event was dequeued.
		return
	}

	if item.event.Kind != service.EventTick {
		o.stopPending()
	}

	directive := o.session.Apply(item.event)
	logrus.Debugf("Operator.processItem directive: %s", spew.Sdump(directive))

	if directive.AutoReturn {
		o.armTick(directive.Gen)
	}

	if item.response != nil {
		item.response <- EventResponse{directive: directive}
	}
}

func (o *Operator) armTick(gen uint64) {
	o.stopPending()
	o.pending = time.AfterFunc(o.delay, func() {
		item := EventItem{ctx: context.Background(), event: service.Tick(gen)}
		select {
		case o.queue <- item:
		case <-o.done:
		}
	})
}

func (o *Operator) stopPending() {
	if o.pending != nil {
		o.pending.Stop()
		o.pending = nil
	}
}

type EventItem struct {
	ctx      context.Context
	event    service.Event
	response chan EventResponse
}

type EventResponse struct {
	directive service.Directive
}

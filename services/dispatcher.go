// services/dispatcher.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/wen-dev/wen_backend/models"
)

// BusinessChangeHandler is invoked with the document state before and after a
// write. before is nil on create, after is nil on delete. Delivery is
// at-least-once: handlers must tolerate being re-run with identical or stale
// inputs.
type BusinessChangeHandler func(ctx context.Context, before, after *models.Business) error

// Dispatcher fans business document events out to registered handlers and
// runs scheduled jobs. It replaces the hosted trigger infrastructure with an
// in-process equivalent carrying the same delivery contract.
type Dispatcher struct {
	handlers []BusinessChangeHandler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnBusinessChange registers a handler. Registration happens once at startup;
// the handler list is never mutated afterwards.
func (d *Dispatcher) OnBusinessChange(handler BusinessChangeHandler) {
	d.handlers = append(d.handlers, handler)
}

// NotifyWrite delivers a change event to every handler. A failing handler is
// retried once; a second failure is logged and dropped, since every handler
// is re-run on the next write of the same document anyway.
func (d *Dispatcher) NotifyWrite(ctx context.Context, before, after *models.Business) {
	for _, handler := range d.handlers {
		if err := handler(ctx, before, after); err != nil {
			log.Printf("dispatcher: handler failed, retrying: %v", err)
			if err := handler(ctx, before, after); err != nil {
				log.Printf("dispatcher: handler failed after retry: %v", err)
			}
		}
	}
}

// Every runs job on a fixed interval in a background goroutine, the same way
// the server runs its other periodic sweeps.
func (d *Dispatcher) Every(name string, interval time.Duration, job func(ctx context.Context) error) {
	go func() {
		for {
			if err := job(context.Background()); err != nil {
				log.Printf("dispatcher: scheduled job %s failed: %v", name, err)
			}
			time.Sleep(interval)
		}
	}()
}

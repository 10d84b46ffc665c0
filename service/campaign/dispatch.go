package campaign

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/QuangTung97/textdrip/model"
	"github.com/QuangTung97/textdrip/pkg/phone"
	"github.com/QuangTung97/textdrip/repository"
)

// Transport delivers a message to a destination phone number.
type Transport interface {
	Send(ctx context.Context, phoneNumber string, text string) error
}

// Options for a single dispatch run
type Options struct {
	Only          string
	RatePerMinute int
}

// Dispatcher iterates contacts in source order and drives the scheduler,
// committing state after every mutating decision.
type Dispatcher struct {
	scheduler Scheduler
	store     repository.StateStore
	transport Transport
	logger    *zap.Logger

	now   func() time.Time
	sleep func(d time.Duration)
}

// NewDispatcher ...
func NewDispatcher(
	scheduler Scheduler, store repository.StateStore, transport Transport, logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		scheduler: scheduler,
		store:     store,
		transport: transport,
		logger:    logger,

		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Run processes every contact once and returns the number of messages
// delivered. A state persistence failure aborts the run; nothing else does.
func (d *Dispatcher) Run(ctx context.Context, contacts []model.Contact, opts Options) (int, error) {
	states, err := d.store.Load()
	if err != nil {
		return 0, err
	}

	// the filter is armed by the option itself, not by the derived key:
	// a short --only number yields an empty key and must then match only
	// contacts whose own key is empty, not the whole list
	filtered := opts.Only != ""
	onlyKey := phone.MatchKey(opts.Only)

	rate := opts.RatePerMinute
	if rate < 1 {
		rate = 1
	}
	interval := time.Minute / time.Duration(rate)

	sent := 0
	for _, contact := range contacts {
		if contact.Inert() {
			d.logger.Info("skipping inert contact", zap.String("phone", contact.Phone))
			continue
		}
		if filtered && contact.MatchKey != onlyKey {
			continue
		}
		if contact.MatchKey == "" {
			d.logger.Warn("phone number has fewer than 10 digits, reply detection disabled",
				zap.String("phone", contact.Phone))
		}

		state := states[contact.MatchKey]
		action := d.scheduler.Next(ctx, contact, state, d.now())

		if action.State.Halted && !state.Halted {
			states[contact.MatchKey] = action.State
			if err := d.store.Save(states); err != nil {
				return sent, err
			}
			d.logger.Info("reply detected, halting follow-ups",
				zap.String("phone", contact.Phone))
			continue
		}

		if !action.Send {
			states[contact.MatchKey] = action.State
			continue
		}

		err := d.transport.Send(ctx, contact.Phone, action.Message)
		if err != nil {
			// previous state kept, the same stage is retried next run
			d.logger.Error("delivery failed",
				zap.String("phone", contact.Phone), zap.Error(err))
			continue
		}

		sent++
		states[contact.MatchKey] = action.State
		if err := d.store.Save(states); err != nil {
			return sent, err
		}
		d.logger.Info("sent message",
			zap.String("phone", contact.Phone),
			zap.Int("stage", int(action.State.Stage)))

		d.sleep(interval)
	}

	if err := d.store.Save(states); err != nil {
		return sent, err
	}
	return sent, nil
}

type dryRunTransport struct {
	logger *zap.Logger
}

// NewDryRunTransport returns a transport that only logs the would-be send
// and always reports success. State commits and throttling are unchanged,
// so a simulated run uses up stage transitions exactly like a real one.
func NewDryRunTransport(logger *zap.Logger) Transport {
	return &dryRunTransport{logger: logger}
}

// Send ...
func (t *dryRunTransport) Send(_ context.Context, phoneNumber string, text string) error {
	t.logger.Info("[dry run] would send",
		zap.String("phone", phoneNumber), zap.String("text", text))
	return nil
}

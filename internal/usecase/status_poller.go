package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

type PollState string

const (
	PollStateIdle      PollState = "idle"
	PollStatePolling   PollState = "polling"
	PollStatePaid      PollState = "paid"
	PollStateNotPaid   PollState = "not_paid"
	PollStateAbandoned PollState = "abandoned"
	PollStateClosed    PollState = "closed"
)

const (
	DefaultPollInterval  = 5 * time.Second
	DefaultRedirectDelay = 2 * time.Second
)

// PollHooks are invoked synchronously from the polling goroutine. Any of them may be nil.
type PollHooks struct {
	OnUpdate   func(entities.PaymentRecord)
	OnRedirect func(entities.PaymentRecord)
	OnNotPaid  func(entities.PaymentRecord)
	OnError    func(error)
}

type PollResult struct {
	State      PollState
	Record     *entities.PaymentRecord
	Queries    int
	Redirected bool
}

// StatusPoller queries a status source on a fixed interval until the
// payment reaches a terminal status or the context is cancelled.
type StatusPoller struct {
	source        interfaces.IStatusSource
	interval      time.Duration
	redirectDelay time.Duration
}

func NewStatusPoller(source interfaces.IStatusSource, interval, redirectDelay time.Duration) *StatusPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if redirectDelay < 0 {
		redirectDelay = 0
	}
	return &StatusPoller{source: source, interval: interval, redirectDelay: redirectDelay}
}

// Run blocks until a terminal state. Errors, not-found answers and
// non-terminal statuses (including unknown) keep the loop going; there is
// no attempt limit. Cancelling ctx ends the run as closed.
func (p *StatusPoller) Run(ctx context.Context, id string, hooks PollHooks) PollResult {
	id = strings.TrimSpace(id)
	if id == "" {
		log.Printf("[payment][poller] abandoned reason=empty-id")
		return PollResult{State: PollStateAbandoned}
	}
	log.Printf("[payment][poller] start id=%s interval=%s", id, p.interval)

	res := PollResult{State: PollStatePolling}
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[payment][poller] closed id=%s queries=%d", id, res.Queries)
			res.State = PollStateClosed
			return res
		case <-timer.C:
		}

		rec, err := p.source.GetStatus(ctx, id)
		res.Queries++
		if ctx.Err() != nil {
			log.Printf("[payment][poller] closed id=%s queries=%d (late result discarded)", id, res.Queries)
			res.State = PollStateClosed
			return res
		}

		switch {
		case err != nil:
			log.Printf("[payment][poller] query failed id=%s attempt=%d err=%v", id, res.Queries, err)
			if hooks.OnError != nil {
				hooks.OnError(err)
			}
		case rec == nil:
			log.Printf("[payment][poller] not-found id=%s attempt=%d", id, res.Queries)
		default:
			res.Record = rec
			if hooks.OnUpdate != nil {
				hooks.OnUpdate(*rec)
			}
			if rec.Status.IsPaid() {
				res.State = PollStatePaid
				res.Redirected = p.redirect(ctx, *rec, hooks)
				return res
			}
			if rec.Status.IsTerminal() {
				log.Printf("[payment][poller] not paid id=%s status=%s", id, rec.Status)
				res.State = PollStateNotPaid
				if hooks.OnNotPaid != nil {
					hooks.OnNotPaid(*rec)
				}
				return res
			}
		}

		timer.Reset(p.interval)
	}
}

func (p *StatusPoller) redirect(ctx context.Context, rec entities.PaymentRecord, hooks PollHooks) bool {
	log.Printf("[payment][poller] paid id=%s redirect_in=%s", rec.ID, p.redirectDelay)
	delay := time.NewTimer(p.redirectDelay)
	defer delay.Stop()

	select {
	case <-ctx.Done():
		log.Printf("[payment][poller] redirect skipped id=%s reason=closed", rec.ID)
		return false
	case <-delay.C:
	}
	if hooks.OnRedirect != nil {
		hooks.OnRedirect(rec)
	}
	return true
}

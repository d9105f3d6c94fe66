// Package actions is the "pick a record, collect admin input, submit a
// decision, reconcile" state machine behind every administrative mutation:
// block, unblock, approve, reject, balance adjustment, payout address
// update, notification send.
package actions

import (
	"context"
	"errors"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StateSelecting
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

type Kind string

const (
	KindBlock            Kind = "block"
	KindUnblock          Kind = "unblock"
	KindResetPassword    Kind = "reset-password"
	KindAdjustBalance    Kind = "adjust-balance"
	KindSetPayoutAddress Kind = "set-payout-address"
	KindApprove          Kind = "approve"
	KindReject           Kind = "reject"
	KindSend             Kind = "send"
	KindMarkRead         Kind = "mark-read"
)

// Input is the auxiliary data collected from the admin while Selecting.
// Which fields matter depends on the action kind; validators enforce that.
type Input struct {
	Notes            string
	Reason           string
	NewBalance       string
	PayoutAddress    string
	RecipientID      string
	Message          string
	NotificationType string
}

// Event announces a completed mutation so the owning list view can refetch
// or patch the affected record.
type Event struct {
	Kind     Kind
	RecordID string
}

// SubmitFunc performs the gateway mutation for one record.
type SubmitFunc func(ctx context.Context, recordID string, kind Kind, in Input) error

// ValidateFunc runs client-side before any network call; returning an
// error keeps the controller in Selecting.
type ValidateFunc func(kind Kind, in Input) error

var (
	ErrSubmitting = errors.New("actions: a submission is already in flight")
	ErrNoSelection = errors.New("actions: no record selected")
)

// Controller drives a single action dialog. One instance per page; at most
// one submission in flight at a time.
type Controller struct {
	submit      SubmitFunc
	validate    ValidateFunc
	onCompleted func(Event)

	mu       sync.Mutex
	state    State
	record   any
	recordID string
	kind     Kind
	input    Input
	err      error
}

type Option func(*Controller)

func WithValidator(v ValidateFunc) Option {
	return func(c *Controller) { c.validate = v }
}

// WithCompletionFunc registers the "mutation completed" listener.
func WithCompletionFunc(fn func(Event)) Option {
	return func(c *Controller) { c.onCompleted = fn }
}

func New(submit SubmitFunc, opts ...Option) *Controller {
	c := &Controller{
		submit:   submit,
		validate: func(Kind, Input) error { return nil },
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open selects a record for the given action and clears any prior
// auxiliary input. Not allowed while a submission is in flight.
func (c *Controller) Open(record any, recordID string, kind Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmitting
	}

	c.state = StateSelecting
	c.record = record
	c.recordID = recordID
	c.kind = kind
	c.input = Input{}
	c.err = nil
	return nil
}

// SetInput replaces the collected auxiliary data. Valid while Selecting or
// Failed (correcting input for a resubmission).
func (c *Controller) SetInput(in Input) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateSelecting && c.state != StateFailed {
		return ErrNoSelection
	}
	c.input = in
	return nil
}

// Cancel returns to Idle and discards input. No-op guard: cancelling a
// submission in flight is not allowed.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmitting
	}
	c.reset()
	return nil
}

// Submit validates the collected input and runs the mutation. Validation
// failure keeps the controller in Selecting and never touches the network.
// On success the completion event fires; on failure the input is retained
// so the admin can correct and resubmit.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	if c.state != StateSelecting && c.state != StateFailed {
		c.mu.Unlock()
		return ErrNoSelection
	}

	if err := c.validate(c.kind, c.input); err != nil {
		c.state = StateSelecting
		c.err = err
		c.mu.Unlock()
		return err
	}

	c.state = StateSubmitting
	c.err = nil
	recordID, kind, input := c.recordID, c.kind, c.input
	c.mu.Unlock()

	err := c.submit(ctx, recordID, kind, input)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.err = err
		c.mu.Unlock()
		return err
	}

	c.state = StateSucceeded
	onCompleted := c.onCompleted
	c.mu.Unlock()

	if onCompleted != nil {
		onCompleted(Event{Kind: kind, RecordID: recordID})
	}
	return nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Input() Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Record returns the selected record and its id.
func (c *Controller) Record() (any, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record, c.recordID
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.record = nil
	c.recordID = ""
	c.kind = ""
	c.input = Input{}
	c.err = nil
}

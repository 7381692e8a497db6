// Package form implements the add-product form: a draft of string field
// values, per-field error state and the validated submit pipeline.
package form

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-admin/internal/client"
	"github.com/kahvecikaan/product-admin/internal/domain"
)

// State is the observable submission state of the form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// Level classifies a notification for display.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Notification is a transient, user-visible message.
type Notification struct {
	Level   Level
	Message string
}

// AggregateMessage is shown when a submit is blocked by field errors.
const AggregateMessage = "Please fix the highlighted fields"

// ProductCreator is the slice of the API client the form depends on.
type ProductCreator interface {
	CreateProduct(ctx context.Context, payload *domain.NewProductPayload) error
}

// Controller owns the draft and drives validation and submission.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	creator   ProductCreator
	validator *domain.Validation
	logger    hclog.Logger

	draft  domain.Draft
	errors map[string]string
	state  State

	// OnSuccess is invoked after a successful submit, once the draft has
	// been reset. The UI closes the modal from here.
	OnSuccess func()

	// Notify receives user-facing notifications. Optional.
	Notify func(Notification)
}

// NewController creates a form controller with an empty draft.
func NewController(creator ProductCreator, logger hclog.Logger) *Controller {
	return &Controller{
		creator:   creator,
		validator: domain.NewValidation(),
		logger:    logger,
		draft:     domain.NewDraft(),
		errors:    make(map[string]string),
		state:     StateIdle,
	}
}

// SetField records a keystroke: it updates the draft value and re-validates
// only the changed field against the current draft.
func (c *Controller) SetField(id, value string) {
	f, ok := domain.FieldByID(id)
	if !ok {
		c.logger.Warn("Ignoring unknown field", "field", id)
		return
	}

	c.draft[id] = value
	if msg := f.Validate(value, c.draft); msg != "" {
		c.errors[id] = msg
	} else {
		delete(c.errors, id)
	}
}

// Value returns the current draft value for a field.
func (c *Controller) Value(id string) string {
	return c.draft[id]
}

// FieldError returns the current error message for a field, "" when valid.
func (c *Controller) FieldError(id string) string {
	return c.errors[id]
}

// State returns the current submission state.
func (c *Controller) State() State {
	return c.state
}

// Submitting reports whether a network call is in flight.
func (c *Controller) Submitting() bool {
	return c.state == StateSubmitting
}

// Reset discards the draft and all error state, e.g. on cancel.
func (c *Controller) Reset() {
	c.draft.Reset()
	c.errors = make(map[string]string)
}

// BeginSubmit re-validates every field and, when the draft is clean,
// coerces it and enters the submitting state, returning the payload for
// the network call. The caller performs the call itself and reports its
// outcome via FinishSubmit; the controller is never touched in between,
// so all of its mutations stay on the caller's goroutine.
func (c *Controller) BeginSubmit() (*domain.NewProductPayload, error) {
	if c.state == StateSubmitting {
		return nil, domain.ErrSubmitPending
	}

	c.errors = domain.ValidateDraft(c.draft)
	if len(c.errors) > 0 {
		c.logger.Debug("Submit blocked by validation", "fields", len(c.errors))
		c.notify(LevelError, AggregateMessage)
		return nil, domain.ErrDraftInvalid
	}

	payload, err := c.draft.ToPayload()
	if err != nil {
		c.logger.Error("Unable to coerce draft", "error", err)
		c.notify(LevelError, AggregateMessage)
		return nil, err
	}

	if errs := c.validator.Validate(payload); len(errs) > 0 {
		c.logger.Error("Payload failed aggregate validation", "error", errs)
		c.notify(LevelError, AggregateMessage)
		return nil, domain.ErrDraftInvalid
	}

	c.state = StateSubmitting
	return payload, nil
}

// FinishSubmit records the outcome of the network call and returns the
// form to idle unconditionally. On success the draft is reset and
// OnSuccess fires; on failure the draft is preserved for correction.
func (c *Controller) FinishSubmit(err error) {
	c.state = StateIdle

	if err != nil {
		c.logger.Error("Unable to create product", "error", err)
		c.notify(LevelError, submitFailureMessage(err))
		return
	}

	c.logger.Info("Product created")
	c.notify(LevelSuccess, "Product created")
	c.Reset()

	if c.OnSuccess != nil {
		c.OnSuccess()
	}
}

// Submit runs the whole pipeline synchronously: validate, coerce, issue
// exactly one create call and apply the outcome. Hosts with their own
// event loop should use BeginSubmit/FinishSubmit instead and keep only
// the network call off-loop.
func (c *Controller) Submit(ctx context.Context) error {
	payload, err := c.BeginSubmit()
	if err != nil {
		return err
	}

	err = c.creator.CreateProduct(ctx, payload)
	c.FinishSubmit(err)
	return err
}

func (c *Controller) notify(level Level, message string) {
	if c.Notify != nil {
		c.Notify(Notification{Level: level, Message: message})
	}
}

// submitFailureMessage prefers the server-provided detail and falls back to
// a generic message for transport-level failures.
func submitFailureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return client.FallbackMessage
}

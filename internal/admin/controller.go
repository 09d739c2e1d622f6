package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// ErrConfirmationRequired is returned when a delete arrives without the
// explicit confirmation flag. Deletes are irreversible (a tag delete
// cascades its relations), so the machine never sees an unconfirmed one.
var ErrConfirmationRequired = errors.New("delete requires explicit confirmation")

// ErrorKind classifies why a mutation failed, so the transport can pick a
// status code without re-parsing messages.
type ErrorKind string

const (
	ErrorNone       ErrorKind = ""
	ErrorValidation ErrorKind = "validation"
	ErrorStore      ErrorKind = "store"
)

// Store is the slice of a service the controller drives: list, load one,
// save (validate + create/update) and delete. Save must return a
// *validation.Error for invalid input and pass datastore errors through
// verbatim.
type Store[R, F any] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id string) (*R, error)
	Save(ctx context.Context, id string, form *F) (*R, error)
	Delete(ctx context.Context, id string) error
}

// Result is what a handled event leaves behind: the settled state, the
// current (possibly refreshed) list, and the failure classification for
// the transport layer.
type Result[R any] struct {
	State State[R]
	Items []R
	Kind  ErrorKind
	Err   error
}

// Controller owns one taxonomy type's admin view state. Handle serializes
// events: within one controller no two mutations are ever in flight at
// once, matching the strictly sequential validate -> mutate -> refetch
// contract.
type Controller[R, F any] struct {
	mu    sync.Mutex
	store Store[R, F]
	state State[R]
	items []R
	log   zerolog.Logger
}

// NewController creates a controller starting in Listing with an empty list
func NewController[R, F any](store Store[R, F], log zerolog.Logger, name string) *Controller[R, F] {
	return &Controller[R, F]{
		store: store,
		state: State[R]{Mode: ModeListing},
		log:   log.With().Str("controller", name).Logger(),
	}
}

// Handle runs one user event to settlement: the transition's effects
// execute in order, each settlement feeds back through the transition
// function, and the loop ends when no effects remain.
func (c *Controller[R, F]) Handle(ctx context.Context, event Event[R, F]) (*Result[R], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if event.Type == EventDelete && !event.Confirmed {
		return nil, ErrConfirmationRequired
	}

	result := &Result[R]{}

	queue := []Event[R, F]{event}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		state, effects := Transition(c.state, next)
		c.state = state

		for _, effect := range effects {
			if settled := c.run(ctx, effect, result); settled != nil {
				queue = append(queue, *settled)
			}
		}
	}

	result.State = c.state
	result.Items = c.items
	return result, nil
}

// State returns a snapshot of the current view state
func (c *Controller[R, F]) State() State[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// run executes a single effect and returns the settlement event it
// produces, if any.
func (c *Controller[R, F]) run(ctx context.Context, effect Effect[F], result *Result[R]) *Event[R, F] {
	switch effect.Type {
	case EffectLoad:
		record, err := c.store.Get(ctx, effect.ID)
		if err != nil {
			result.Kind, result.Err = ErrorStore, err
			return &Event[R, F]{Type: EventLoadFailed, Message: err.Error()}
		}
		if record == nil {
			return &Event[R, F]{Type: EventLoadFailed, Message: "Record not found"}
		}
		return &Event[R, F]{Type: EventLoadOK, Record: record}

	case EffectSubmit:
		if _, err := c.store.Save(ctx, c.state.EditingID, effect.Form); err != nil {
			result.Kind, result.Err = classify(err), err
			c.log.Warn().Err(err).Str("kind", string(result.Kind)).Msg("Submit failed")
			return &Event[R, F]{Type: EventMutationFailed, Message: err.Error()}
		}
		return &Event[R, F]{Type: EventMutationOK}

	case EffectDelete:
		if err := c.store.Delete(ctx, effect.ID); err != nil {
			result.Kind, result.Err = ErrorStore, err
			c.log.Warn().Err(err).Str("id", effect.ID).Msg("Delete failed")
			return &Event[R, F]{Type: EventMutationFailed, Message: err.Error()}
		}
		return &Event[R, F]{Type: EventMutationOK}

	case EffectRefresh:
		items, err := c.store.List(ctx)
		if err != nil {
			// keep the stale list; surface the failure
			result.Kind, result.Err = ErrorStore, err
			c.state.Error = err.Error()
			return nil
		}
		c.items = items
		return nil
	}

	return nil
}

// classify maps a Save error to its kind
func classify(err error) ErrorKind {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return ErrorValidation
	}
	return ErrorStore
}

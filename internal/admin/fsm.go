// Package admin models the admin console's CRUD view state as an explicit
// finite state machine. Each taxonomy type (tags, categories, articles)
// gets one controller instance whose state is a tagged union of Listing and
// Editing; every transition is a pure function of (state, event) returning
// the next state plus an ordered effect list, and side effects run strictly
// validate -> mutate -> refetch with no optimistic mutation of the list.
package admin

// Mode identifies which arm of the state union the controller is in
type Mode string

const (
	ModeListing Mode = "listing"
	ModeEditing Mode = "editing"
)

// State is the controller's view state. In Editing, Draft carries the
// record pre-filling the form (nil for a brand-new record) and EditingID
// its id ("" means create on submit). Error is the single message surfaced
// to the form or list after a failed step.
type State[R any] struct {
	Mode      Mode   `json:"mode"`
	Draft     *R     `json:"draft,omitempty"`
	EditingID string `json:"editing_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// EventType enumerates user actions plus the settlement events the effect
// runner feeds back once an asynchronous step resolves.
type EventType string

const (
	EventList   EventType = "list"
	EventNew    EventType = "new"
	EventEdit   EventType = "edit"
	EventCancel EventType = "cancel"
	EventSubmit EventType = "submit"
	EventDelete EventType = "delete"

	// settlement events, never sent by handlers directly
	EventLoadOK         EventType = "load_ok"
	EventLoadFailed     EventType = "load_failed"
	EventMutationOK     EventType = "mutation_ok"
	EventMutationFailed EventType = "mutation_failed"
)

// Event is a single input to the state machine
type Event[R, F any] struct {
	Type      EventType
	ID        string // Edit, Delete
	Form      *F     // Submit
	Confirmed bool   // Delete: explicit user confirmation
	Record    *R     // LoadOK
	Message   string // LoadFailed, MutationFailed
}

// EffectType enumerates the side effects a transition may request
type EffectType string

const (
	EffectLoad    EffectType = "load"    // fetch one record to pre-fill the form
	EffectSubmit  EffectType = "submit"  // validate + create/update
	EffectDelete  EffectType = "delete"  // destroy one record
	EffectRefresh EffectType = "refresh" // mandatory list refetch
)

// Effect is one instruction in a transition's ordered effect list
type Effect[F any] struct {
	Type EffectType
	ID   string
	Form *F
}

// Transition computes the next state and effect list for an event. Pure:
// no I/O, no clock, no mutation of its inputs. Events that make no sense
// in the current mode leave the state untouched and request nothing.
func Transition[R, F any](s State[R], e Event[R, F]) (State[R], []Effect[F]) {
	switch e.Type {
	case EventList:
		return State[R]{Mode: ModeListing}, []Effect[F]{{Type: EffectRefresh}}

	case EventNew:
		if s.Mode != ModeListing {
			return s, nil
		}
		return State[R]{Mode: ModeEditing}, nil

	case EventEdit:
		if s.Mode != ModeListing {
			return s, nil
		}
		return State[R]{Mode: ModeEditing, EditingID: e.ID}, []Effect[F]{{Type: EffectLoad, ID: e.ID}}

	case EventCancel:
		if s.Mode != ModeEditing {
			return s, nil
		}
		return State[R]{Mode: ModeListing}, nil

	case EventSubmit:
		if s.Mode != ModeEditing {
			return s, nil
		}
		next := s
		next.Error = ""
		return next, []Effect[F]{{Type: EffectSubmit, Form: e.Form}}

	case EventDelete:
		if s.Mode != ModeListing {
			return s, nil
		}
		next := s
		next.Error = ""
		return next, []Effect[F]{{Type: EffectDelete, ID: e.ID}}

	case EventLoadOK:
		next := s
		next.Draft = e.Record
		return next, nil

	case EventLoadFailed:
		// the record vanished under us; fall back to a fresh list
		return State[R]{Mode: ModeListing, Error: e.Message}, []Effect[F]{{Type: EffectRefresh}}

	case EventMutationOK:
		return State[R]{Mode: ModeListing}, []Effect[F]{{Type: EffectRefresh}}

	case EventMutationFailed:
		// stay put so the user can correct and resubmit
		next := s
		next.Error = e.Message
		return next, nil
	}

	return s, nil
}

package admin

import "testing"

type testRecord struct {
	ID   string
	Name string
}

type testForm struct {
	Name string
}

func TestTransition_ListingToEditing(t *testing.T) {
	listing := State[testRecord]{Mode: ModeListing}

	next, effects := Transition(listing, Event[testRecord, testForm]{Type: EventNew})
	if next.Mode != ModeEditing {
		t.Errorf("expected Editing, got %s", next.Mode)
	}
	if next.EditingID != "" {
		t.Errorf("new record must have an empty editing id, got %q", next.EditingID)
	}
	if len(effects) != 0 {
		t.Errorf("new needs no effects, got %d", len(effects))
	}

	next, effects = Transition(listing, Event[testRecord, testForm]{Type: EventEdit, ID: "r1"})
	if next.Mode != ModeEditing || next.EditingID != "r1" {
		t.Errorf("expected Editing r1, got %s %q", next.Mode, next.EditingID)
	}
	if len(effects) != 1 || effects[0].Type != EffectLoad || effects[0].ID != "r1" {
		t.Errorf("expected a single load effect for r1, got %+v", effects)
	}
}

func TestTransition_EditingIgnoresListingEvents(t *testing.T) {
	editing := State[testRecord]{Mode: ModeEditing, EditingID: "r1"}

	for _, typ := range []EventType{EventNew, EventEdit, EventDelete} {
		next, effects := Transition(editing, Event[testRecord, testForm]{Type: typ, ID: "r2"})
		if next != editing {
			t.Errorf("%s while editing must not change state, got %+v", typ, next)
		}
		if len(effects) != 0 {
			t.Errorf("%s while editing must request nothing, got %+v", typ, effects)
		}
	}
}

func TestTransition_CancelDiscardsDraft(t *testing.T) {
	editing := State[testRecord]{
		Mode:      ModeEditing,
		EditingID: "r1",
		Draft:     &testRecord{ID: "r1", Name: "old"},
		Error:     "previous failure",
	}

	next, effects := Transition(editing, Event[testRecord, testForm]{Type: EventCancel})
	if next.Mode != ModeListing {
		t.Errorf("expected Listing, got %s", next.Mode)
	}
	if next.Draft != nil || next.Error != "" || next.EditingID != "" {
		t.Errorf("cancel must clear the editing state, got %+v", next)
	}
	if len(effects) != 0 {
		t.Errorf("cancel needs no effects, got %d", len(effects))
	}

	// cancelling from Listing is a no-op
	listing := State[testRecord]{Mode: ModeListing}
	next, _ = Transition(listing, Event[testRecord, testForm]{Type: EventCancel})
	if next != listing {
		t.Errorf("cancel in Listing must not change state, got %+v", next)
	}
}

func TestTransition_SubmitClearsStaleError(t *testing.T) {
	editing := State[testRecord]{Mode: ModeEditing, EditingID: "r1", Error: "stale"}
	form := &testForm{Name: "renamed"}

	next, effects := Transition(editing, Event[testRecord, testForm]{Type: EventSubmit, Form: form})
	if next.Error != "" {
		t.Errorf("submit must clear the prior error, got %q", next.Error)
	}
	if next.Mode != ModeEditing {
		t.Errorf("submit stays in Editing until settlement, got %s", next.Mode)
	}
	if len(effects) != 1 || effects[0].Type != EffectSubmit || effects[0].Form != form {
		t.Errorf("expected a single submit effect carrying the form, got %+v", effects)
	}
}

func TestTransition_Settlement(t *testing.T) {
	editing := State[testRecord]{Mode: ModeEditing, EditingID: "r1"}

	record := &testRecord{ID: "r1", Name: "loaded"}
	next, effects := Transition(editing, Event[testRecord, testForm]{Type: EventLoadOK, Record: record})
	if next.Draft != record {
		t.Error("load settlement must install the draft")
	}
	if len(effects) != 0 {
		t.Errorf("load settlement needs no effects, got %d", len(effects))
	}

	next, effects = Transition(editing, Event[testRecord, testForm]{Type: EventLoadFailed, Message: "gone"})
	if next.Mode != ModeListing || next.Error != "gone" {
		t.Errorf("a vanished record must fall back to Listing with the message, got %+v", next)
	}
	if len(effects) != 1 || effects[0].Type != EffectRefresh {
		t.Errorf("the fallback must refetch the list, got %+v", effects)
	}

	next, effects = Transition(editing, Event[testRecord, testForm]{Type: EventMutationOK})
	if next.Mode != ModeListing {
		t.Errorf("a settled mutation returns to Listing, got %s", next.Mode)
	}
	if len(effects) != 1 || effects[0].Type != EffectRefresh {
		t.Errorf("every settled mutation must refetch, got %+v", effects)
	}

	next, effects = Transition(editing, Event[testRecord, testForm]{Type: EventMutationFailed, Message: "Name is required"})
	if next.Mode != ModeEditing {
		t.Errorf("a failed mutation keeps the form open, got %s", next.Mode)
	}
	if next.Error != "Name is required" {
		t.Errorf("the failure message must surface on the form, got %q", next.Error)
	}
	if next.EditingID != "r1" {
		t.Errorf("a failed mutation must not lose the editing id, got %q", next.EditingID)
	}
	if len(effects) != 0 {
		t.Errorf("a failed mutation requests nothing, got %d effects", len(effects))
	}
}

func TestTransition_ListAlwaysRefreshes(t *testing.T) {
	for _, start := range []State[testRecord]{
		{Mode: ModeListing},
		{Mode: ModeEditing, EditingID: "r1", Error: "stale"},
	} {
		next, effects := Transition(start, Event[testRecord, testForm]{Type: EventList})
		if next.Mode != ModeListing || next.Error != "" {
			t.Errorf("list must reset to a clean Listing, got %+v", next)
		}
		if len(effects) != 1 || effects[0].Type != EffectRefresh {
			t.Errorf("list must request a refetch, got %+v", effects)
		}
	}
}

package portal

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// Registry states.
const (
	StateLoading    = "loading"
	StateReady      = "ready"
	StateErrorEmpty = "error_empty"
)

const (
	eventLoaded     = "loaded"
	eventLoadFailed = "load_failed"
	eventRefresh    = "refresh"
)

// ConfirmPrompt is the question a front-end asks before a delete.
const ConfirmPrompt = "Are you sure you want to delete this submission?"

// ErrNotListed is returned by Delete for an id that is not displayed.
var ErrNotListed = errors.New("submission is not in the displayed list")

// Confirm asks the user to confirm deleting item. A nil Confirm declines.
type Confirm func(item dto.ThesisResponse) bool

// Registry is one instance of the admin view: the list of submissions as
// last fetched, newest first, minus the rows deleted since.
type Registry struct {
	store    RecordStore
	notifier Notifier

	mu    sync.Mutex
	fsm   *fsm.FSM
	items []dto.ThesisResponse
}

func NewRegistry(store RecordStore, notifier Notifier) *Registry {
	return &Registry{
		store:    store,
		notifier: notifier,
		fsm: fsm.NewFSM(
			StateLoading,
			fsm.Events{
				{Name: eventLoaded, Src: []string{StateLoading}, Dst: StateReady},
				{Name: eventLoadFailed, Src: []string{StateLoading}, Dst: StateErrorEmpty},
				{Name: eventRefresh, Src: []string{StateReady, StateErrorEmpty}, Dst: StateLoading},
			},
			fsm.Callbacks{},
		),
	}
}

func (r *Registry) State() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fsm.Current()
}

// Items returns a copy of the displayed list.
func (r *Registry) Items() []dto.ThesisResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]dto.ThesisResponse, len(r.items))
	copy(out, r.items)
	return out
}

// Load fetches every submission. On failure the list is emptied and an
// error notification is shown; there is no automatic retry.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.fsm.Can(eventRefresh) {
		r.fire(ctx, eventRefresh)
	}
	r.mu.Unlock()

	items, err := r.store.SelectAll(ctx)

	r.mu.Lock()
	if err != nil {
		r.items = nil
		r.fire(ctx, eventLoadFailed)
		r.mu.Unlock()

		log.Printf("Error fetching submissions: %v", err)
		notify(r.notifier, notifyLoadFailed)
		return err
	}
	r.items = items
	r.fire(ctx, eventLoaded)
	r.mu.Unlock()
	return nil
}

// Refresh is the manual reload control.
func (r *Registry) Refresh(ctx context.Context) error {
	return r.Load(ctx)
}

// Delete removes one submission after confirm approves it. The row leaves
// the displayed list only once the store has confirmed the delete; a failed
// delete leaves the list untouched. It reports whether the row was deleted.
func (r *Registry) Delete(ctx context.Context, id uuid.UUID, confirm Confirm) (bool, error) {
	r.mu.Lock()
	item, ok := r.find(id)
	r.mu.Unlock()
	if !ok {
		return false, ErrNotListed
	}

	if confirm == nil || !confirm(item) {
		return false, nil
	}

	if err := r.store.DeleteByID(ctx, id); err != nil {
		log.Printf("Error deleting submission: %v", err)
		notify(r.notifier, notifyDeleteFailed)
		return false, err
	}

	r.mu.Lock()
	kept := make([]dto.ThesisResponse, 0, len(r.items))
	for _, it := range r.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	r.items = kept
	r.mu.Unlock()

	notify(r.notifier, notifyDeleted)
	return true, nil
}

func (r *Registry) find(id uuid.UUID) (dto.ThesisResponse, bool) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return dto.ThesisResponse{}, false
}

// fire applies a transition; overlapping loads can race a transition out of
// a state it no longer applies to, which is not an error here.
func (r *Registry) fire(ctx context.Context, event string) {
	if err := r.fsm.Event(ctx, event); err != nil {
		var invalid fsm.InvalidEventError
		if !errors.As(err, &invalid) {
			log.Printf("registry transition %s: %v", event, err)
		}
	}
}

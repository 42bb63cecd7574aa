package portal

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
)

// ErrSubmitInFlight is returned when Submit is called while an earlier
// submission from the same form has not finished.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// Form is one instance of the public submission form.
type Form struct {
	store    RecordStore
	notifier Notifier

	submitting atomic.Bool

	mu     sync.Mutex
	fields dto.SubmitThesisRequest
	errors map[string]string
}

func NewForm(store RecordStore, notifier Notifier) *Form {
	f := &Form{store: store, notifier: notifier}
	f.fields = emptyFields()
	return f
}

func emptyFields() dto.SubmitThesisRequest {
	return dto.SubmitThesisRequest{UserType: domain.UserTypeLPU}
}

func (f *Form) SetUserType(t domain.UserType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.UserType = t
}

// Fill replaces every input value at once.
func (f *Form) Fill(values dto.SubmitThesisRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = values
}

func (f *Form) Fields() dto.SubmitThesisRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Errors returns the field messages from the last rejected Submit.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submitting is true while an insert is in flight; the submit control
// should be disabled meanwhile.
func (f *Form) Submitting() bool {
	return f.submitting.Load()
}

// Submit validates the current values and, if they are complete, sends
// exactly one insert. On success the inputs are reset; on failure they are
// kept so the user can try again.
func (f *Form) Submit(ctx context.Context) (*dto.ThesisResponse, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	f.mu.Lock()
	req := f.fields
	f.mu.Unlock()

	req.Normalize()
	if err := req.Validate(); err != nil {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			f.setErrors(ve.Fields)
		}
		return nil, err
	}
	f.setErrors(nil)

	saved, err := f.store.Insert(ctx, req)
	if err != nil {
		log.Printf("Submission error: %v", err)
		notify(f.notifier, notifySubmitFailed)
		return nil, err
	}

	f.mu.Lock()
	f.fields = emptyFields()
	f.mu.Unlock()

	notify(f.notifier, notifySubmitted)
	return saved, nil
}

func (f *Form) setErrors(fields map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = fields
}

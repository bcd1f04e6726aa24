package consultation

import (
	"sync"

	"github.com/xyz-asif/findme/internal/pkg/form"
)

// Flow is one session's callback form and its send state.
type Flow struct {
	mu        sync.Mutex
	form      *form.State
	state     State
	lastError string
}

func NewFlow() *Flow {
	return &Flow{form: form.NewState(Schema), state: StateIdle}
}

func (f *Flow) SetFields(values form.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Dispatch(form.Action{Kind: form.SetValues, Values: values})
}

func (f *Flow) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view()
}

func (f *Flow) view() View {
	fv := f.form.View()
	return View{
		Values:    fv.Values,
		Errors:    fv.Errors,
		State:     f.state,
		Sending:   f.state == StateSending,
		LastError: f.lastError,
	}
}

// begin validates and moves to Sending.
func (f *Flow) begin() (CallbackRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSending {
		return CallbackRequest{}, ErrSendInFlight
	}

	var req CallbackRequest
	err := f.form.Submit(func(v form.Values) error {
		req = CallbackRequest{Name: v[FieldName], Phone: v[FieldPhone], Message: v[FieldMessage]}
		return nil
	})
	if err != nil {
		return CallbackRequest{}, err
	}
	f.state = StateSending
	f.lastError = ""
	return req, nil
}

func (f *Flow) succeed() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Dispatch(form.Action{Kind: form.Reset})
	f.state = StateSuccess
	return f.view()
}

func (f *Flow) fail(message string) View {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateFailed
	f.lastError = message
	return f.view()
}

package report

import (
	"sync"

	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/pkg/form"
)

// Draft is one session's report in progress. Every method takes the lock,
// so events for a session apply one at a time.
type Draft struct {
	mu     sync.Mutex
	form   *form.State
	images intake.List
	state  State
}

func NewDraft() *Draft {
	return &Draft{form: form.NewState(Schema), state: StateIdle}
}

func (d *Draft) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.images.Count()
}

func (d *Draft) Append(previews []intake.Preview) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.images.Append(previews)
}

func (d *Draft) SetFields(values form.Values) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form.Dispatch(form.Action{Kind: form.SetValues, Values: values})
}

func (d *Draft) RemoveImage(i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.images.Remove(i)
}

func (d *Draft) ClearImages() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.images.Clear()
}

func (d *Draft) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view()
}

func (d *Draft) view() View {
	fv := d.form.View()
	count := d.images.Count()
	return View{
		Values:     fv.Values,
		Errors:     fv.Errors,
		Images:     d.images.Items(),
		ImageCount: count,
		MaxImages:  intake.MaxImages,
		State:      d.state,
		Submitting: d.state == StateSubmitting,
		CanSubmit:  d.state == StateIdle && count > 0,
	}
}

// begin moves the draft to Submitting and returns the payload to send.
func (d *Draft) begin() (Submission, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitting {
		return Submission{}, ErrSubmitInFlight
	}
	if d.images.Count() == 0 {
		return Submission{}, ErrNoImages
	}

	var sub Submission
	err := d.form.Submit(func(values form.Values) error {
		sub = buildSubmission(values, d.images.Items())
		return nil
	})
	if err != nil {
		return Submission{}, err
	}
	d.state = StateSubmitting
	return sub, nil
}

// finish returns the draft to Idle, clearing it after a success.
func (d *Draft) finish(succeeded bool) View {
	d.mu.Lock()
	defer d.mu.Unlock()

	if succeeded {
		d.form.Dispatch(form.Action{Kind: form.Reset})
		d.images.Clear()
	}
	d.state = StateIdle
	return d.view()
}

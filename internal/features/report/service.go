package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/pkg/backend"
	"github.com/xyz-asif/findme/internal/pkg/form"
	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/pkg/notify"
	"github.com/xyz-asif/findme/internal/pkg/session"
)

const successNoticeDuration = 8 * time.Second

// Notifier hands out the sink for one session.
type Notifier interface {
	For(audience string) notify.Sink
}

type Service struct {
	drafts    *session.Registry[*Draft]
	pipeline  *intake.Pipeline
	notices   Notifier
	submitter Submitter
	baseURL   string
	log       *logger.Logger
}

// NewService wires the report flow. baseURL is only used in failure
// messages of the HTTP transport.
func NewService(drafts *session.Registry[*Draft], pipeline *intake.Pipeline, notices Notifier, submitter Submitter, baseURL string) *Service {
	return &Service{
		drafts:    drafts,
		pipeline:  pipeline,
		notices:   notices,
		submitter: submitter,
		baseURL:   baseURL,
		log:       logger.Default().Named("report"),
	}
}

func (s *Service) Draft(sessionID string) View {
	return s.drafts.Get(sessionID).View()
}

func (s *Service) SetFields(sessionID string, values form.Values) View {
	d := s.drafts.Get(sessionID)
	d.SetFields(values)
	return d.View()
}

func (s *Service) AddImages(ctx context.Context, sessionID string, files []intake.File) (intake.Outcome, View) {
	d := s.drafts.Get(sessionID)
	out := s.pipeline.Process(ctx, d, files, s.notices.For(sessionID))
	return out, d.View()
}

func (s *Service) RemoveImage(sessionID string, index int) (View, error) {
	d := s.drafts.Get(sessionID)
	if err := d.RemoveImage(index); err != nil {
		return View{}, err
	}
	return d.View(), nil
}

func (s *Service) ClearImages(sessionID string) View {
	d := s.drafts.Get(sessionID)
	d.ClearImages()
	return d.View()
}

// Submit applies values (if any) and sends the draft. The transport is not
// tied to ctx's cancellation: once started, a submission runs to the end.
func (s *Service) Submit(ctx context.Context, sessionID string, values form.Values) (Receipt, View, error) {
	d := s.drafts.Get(sessionID)
	if len(values) > 0 {
		d.SetFields(values)
	}

	sub, err := d.begin()
	if err != nil {
		return Receipt{}, d.View(), err
	}

	sink := s.notices.For(sessionID)
	receipt, err := s.submitter.Submit(context.WithoutCancel(ctx), sub)
	if err != nil {
		failure := backend.Classify(err, s.baseURL)
		s.log.Error("submit for session %s failed: %v", sessionID, err)
		sink.Notify(notify.Failure("Submission Failed", failure.Message))
		return Receipt{}, d.finish(false), failure
	}

	s.log.Info("report from session %s submitted with %d image(s)", sessionID, len(sub.Images))
	n := notify.Info("Submission Successful", fmt.Sprintf(
		"Your information with %d image(s) has been submitted. We will process it shortly. "+
			"If any lead is found, we will contact the nearby police station you provided for immediate action.",
		len(sub.Images)))
	n.Duration = successNoticeDuration
	sink.Notify(n)
	return receipt, d.finish(true), nil
}

// IsDisabled reports whether err is one of the "submit is disabled" errors.
func IsDisabled(err error) bool {
	return errors.Is(err, ErrNoImages) || errors.Is(err, ErrSubmitInFlight)
}

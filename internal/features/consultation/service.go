package consultation

import (
	"context"

	"github.com/xyz-asif/findme/internal/pkg/backend"
	"github.com/xyz-asif/findme/internal/pkg/form"
	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/pkg/notify"
	"github.com/xyz-asif/findme/internal/pkg/session"
)

type Notifier interface {
	For(audience string) notify.Sink
}

type Service struct {
	flows   *session.Registry[*Flow]
	sender  Sender
	notices Notifier
	baseURL string
	log     *logger.Logger
}

func NewService(flows *session.Registry[*Flow], sender Sender, notices Notifier, baseURL string) *Service {
	return &Service{
		flows:   flows,
		sender:  sender,
		notices: notices,
		baseURL: baseURL,
		log:     logger.Default().Named("consultation"),
	}
}

func (s *Service) Form(sessionID string) View {
	return s.flows.Get(sessionID).View()
}

func (s *Service) SetFields(sessionID string, values form.Values) View {
	f := s.flows.Get(sessionID)
	f.SetFields(values)
	return f.View()
}

// Submit applies values (if any), validates and sends the request once.
// There is no retry and no timeout beyond the transport's own.
func (s *Service) Submit(ctx context.Context, sessionID string, values form.Values) (Ack, View, error) {
	f := s.flows.Get(sessionID)
	if len(values) > 0 {
		f.SetFields(values)
	}

	req, err := f.begin()
	if err != nil {
		return Ack{}, f.View(), err
	}

	sink := s.notices.For(sessionID)
	ack, err := s.sender.Send(context.WithoutCancel(ctx), req)
	if err != nil {
		failure := backend.Classify(err, s.baseURL)
		s.log.Error("Counselor request error: %v", err)
		sink.Notify(notify.Failure("Submission Failed", failure.Message))
		return Ack{}, f.fail(failure.Message), failure
	}

	s.log.Info("callback request from session %s accepted", sessionID)
	sink.Notify(notify.Info("Request Submitted", "We will contact you shortly. Thank you for reaching out."))
	return ack, f.succeed(), nil
}

package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/pkg/backend"
	"github.com/xyz-asif/findme/internal/pkg/logger"
)

// Submitter delivers a validated report somewhere.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) (Receipt, error)
}

// SimulatedSubmitter logs the payload, waits Delay and always succeeds.
type SimulatedSubmitter struct {
	Delay time.Duration
	log   *logger.Logger
}

func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: delay, log: logger.Default().Named("report")}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	s.log.Info("Form submitted: fullName=%q age=%d city=%q date=%s station=%q images=%d",
		sub.FullName, sub.Age, sub.CityLastSeen, sub.DateLastSeen, sub.NearbyPoliceStation, len(sub.Images))
	return Receipt{ImagesProcessed: len(sub.Images), Simulated: true}, nil
}

type uploadResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	DocumentID      string `json:"documentId"`
	ImagesProcessed int    `json:"imagesProcessed"`
	FacesDetected   int    `json:"facesDetected"`
}

// HTTPSubmitter posts the report to the intake backend's upload endpoint.
type HTTPSubmitter struct {
	client *backend.Client
	path   string
}

func NewHTTPSubmitter(client *backend.Client) *HTTPSubmitter {
	return &HTTPSubmitter{client: client, path: "/api/upload"}
}

func (h *HTTPSubmitter) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	body := (&backend.Multipart{}).
		Field(FieldFullName, sub.FullName).
		Field(FieldAge, strconv.Itoa(sub.Age)).
		Field(FieldCityLastSeen, sub.CityLastSeen).
		Field(FieldDateLastSeen, sub.DateLastSeen).
		Field(FieldContactPhone, sub.ContactPhone).
		Field(FieldNearbyPoliceStation, sub.NearbyPoliceStation).
		Field(FieldAdditionalDescription, sub.AdditionalDescription)

	for i, img := range sub.Images {
		contentType, data, err := intake.DecodeDataURL(img.DataURL)
		if err != nil {
			return Receipt{}, fmt.Errorf("image %d (%s): %w", i, img.Name, err)
		}
		body.File(backend.Part{Field: "images", FileName: img.Name, ContentType: contentType, Data: data})
	}

	var resp uploadResponse
	if err := h.client.PostMultipart(ctx, h.path, body, &resp); err != nil {
		return Receipt{}, err
	}
	if !resp.Success {
		return Receipt{}, &backend.APIError{StatusCode: 200, Detail: resp.Message}
	}
	return Receipt{
		DocumentID:      resp.DocumentID,
		Message:         resp.Message,
		ImagesProcessed: resp.ImagesProcessed,
		FacesDetected:   resp.FacesDetected,
	}, nil
}

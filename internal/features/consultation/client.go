package consultation

import (
	"context"

	"github.com/xyz-asif/findme/internal/pkg/backend"
)

// Sender delivers a callback request.
type Sender interface {
	Send(ctx context.Context, req CallbackRequest) (Ack, error)
}

// CounselorClient posts callback requests to the backend's counselor endpoint.
type CounselorClient struct {
	client *backend.Client
	path   string
}

func NewCounselorClient(client *backend.Client) *CounselorClient {
	return &CounselorClient{client: client, path: "/api/counselor"}
}

func (c *CounselorClient) Send(ctx context.Context, req CallbackRequest) (Ack, error) {
	body := (&backend.Multipart{}).
		Field(FieldName, req.Name).
		Field(FieldPhone, req.Phone).
		Field(FieldMessage, req.Message)

	var ack Ack
	if err := c.client.PostMultipart(ctx, c.path, body, &ack); err != nil {
		return Ack{}, err
	}
	return ack, nil
}

package notifications

import "github.com/xyz-asif/findme/internal/pkg/notify"

type EventType string

const (
	// EventPending carries the session's active notices when a stream opens.
	EventPending EventType = "pending"
	EventNotice  EventType = "notice"
)

// Event is one websocket frame.
type Event struct {
	Type    EventType       `json:"type"`
	Notice  *notify.Notice  `json:"notice,omitempty"`
	Notices []notify.Notice `json:"notices,omitempty"`
}

type ListResponse struct {
	Notices []notify.Notice `json:"notices"`
}

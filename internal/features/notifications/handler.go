package notifications

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/xyz-asif/findme/internal/middleware"
	"github.com/xyz-asif/findme/internal/pkg/logger"
	"github.com/xyz-asif/findme/internal/pkg/notify"
	"github.com/xyz-asif/findme/internal/pkg/response"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

type Handler struct {
	queue    *notify.Queue
	upgrader websocket.Upgrader
	// streams end when ctx does, so shutdown is not held up by open sockets
	ctx context.Context
	log *logger.Logger
}

func NewHandler(ctx context.Context, queue *notify.Queue, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Handler{
		queue: queue,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
		ctx: ctx,
		log: logger.Default().Named("notifications"),
	}
}

// ListNotifications godoc
// @Summary List notifications
// @Description Active notices for this session, oldest first
// @Tags notifications
// @Produce json
// @Success 200 {object} response.APIResponse{data=ListResponse}
// @Router /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	response.Success(c, ListResponse{Notices: h.queue.Pending(middleware.SessionID(c))})
}

// DismissNotification godoc
// @Summary Dismiss a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} response.APIResponse{data=ListResponse}
// @Failure 404 {object} response.APIResponse
// @Router /notifications/{id} [delete]
func (h *Handler) DismissNotification(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if !h.queue.Dismiss(sessionID, c.Param("id")) {
		response.NotFound(c, "Notification not found", "NOTIFICATION_NOT_FOUND")
		return
	}
	response.Success(c, ListResponse{Notices: h.queue.Pending(sessionID)})
}

// Stream godoc
// @Summary Stream notifications
// @Description Websocket: one "pending" event on connect, then a "notice" event per new notice
// @Tags notifications
// @Router /notifications/ws [get]
func (h *Handler) Stream(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	// subscribe before the snapshot so nothing falls between the two
	notices, cancel := h.queue.Subscribe(sessionID)
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade for session %s failed: %v", sessionID, err)
		return
	}
	defer conn.Close()

	go h.readPump(conn, cancel)

	stop := context.AfterFunc(h.ctx, cancel)
	defer stop()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	pending := h.queue.Pending(sessionID)
	if err := h.write(conn, Event{Type: EventPending, Notices: pending}); err != nil {
		return
	}
	sent := newSentSet(pending)

	for {
		select {
		case n, ok := <-notices:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if !sent.fresh(n) {
				continue
			}
			if err := h.write(conn, Event{Type: EventNotice, Notice: &n}); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sentSet holds the ids of the snapshot; a notice pushed between Subscribe
// and Pending arrives on the channel too and must not be sent twice.
type sentSet map[string]struct{}

func newSentSet(notices []notify.Notice) sentSet {
	s := make(sentSet, len(notices))
	for _, n := range notices {
		s[n.ID] = struct{}{}
	}
	return s
}

// fresh reports whether n still needs sending. Ids are unique, so a
// duplicate is forgotten once skipped.
func (s sentSet) fresh(n notify.Notice) bool {
	if _, ok := s[n.ID]; ok {
		delete(s, n.ID)
		return false
	}
	return true
}

func (h *Handler) write(conn *websocket.Conn, ev Event) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(ev)
}

// readPump only watches for the client going away; clients send nothing.
func (h *Handler) readPump(conn *websocket.Conn, cancel func()) {
	defer cancel()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("stream read: %v", err)
			}
			return
		}
	}
}

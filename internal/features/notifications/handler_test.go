package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/findme/internal/middleware"
	"github.com/xyz-asif/findme/internal/pkg/notify"
	"github.com/xyz-asif/findme/internal/pkg/token"
)

const secret = "test"

func setup(t *testing.T) (*gin.Engine, *notify.Queue, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	q := notify.NewQueue(5*time.Second, 10*time.Second, 3)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	r.Use(middleware.Session(middleware.SessionConfig{Secret: secret, TTL: time.Hour}))
	RegisterRoutes(ctx, r.Group("/api/v1"), q, []string{"http://localhost:3000"})

	signed, err := token.GenerateSessionToken("sess-1", secret, time.Hour)
	require.NoError(t, err)
	return r, q, "sess-1", signed
}

func request(t *testing.T, r *gin.Engine, method, path, tok string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestListAndDismiss(t *testing.T) {
	r, q, sid, tok := setup(t)
	first := q.Push(sid, notify.Info("Images added", "2 image(s) added successfully"))
	q.Push("someone-else", notify.Info("Other", "not yours"))

	code, body := request(t, r, http.MethodGet, "/api/v1/notifications", tok)
	require.Equal(t, http.StatusOK, code)
	notices := body["data"].(map[string]any)["notices"].([]any)
	require.Len(t, notices, 1)
	require.Equal(t, "Images added", notices[0].(map[string]any)["title"])

	code, body = request(t, r, http.MethodDelete, "/api/v1/notifications/"+first.ID, tok)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, body["data"].(map[string]any)["notices"])

	code, _ = request(t, r, http.MethodDelete, "/api/v1/notifications/"+first.ID, tok)
	require.Equal(t, http.StatusNotFound, code)
}

func TestStream_SnapshotThenLive(t *testing.T) {
	r, q, sid, tok := setup(t)
	q.Push(sid, notify.Info("Images added", "1 image(s) added successfully"))

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/notifications/ws?token=" + tok
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, EventPending, ev.Type)
	require.Len(t, ev.Notices, 1)

	q.Push(sid, notify.Failure("Submission Failed", "Failed to submit request. Please try again."))
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, EventNotice, ev.Type)
	require.Equal(t, "Submission Failed", ev.Notice.Title)
	require.Equal(t, notify.Destructive, ev.Notice.Variant)
}

func TestStream_RejectsForeignOrigin(t *testing.T) {
	r, _, _, tok := setup(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/notifications/ws?token=" + tok
	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSentSet_SkipsNoticesAlreadyInSnapshot(t *testing.T) {
	q := notify.NewQueue(5*time.Second, 10*time.Second, 3)
	live, cancel := q.Subscribe("sess-1")
	defer cancel()

	// pushed after Subscribe but before the snapshot is taken
	early := q.Push("sess-1", notify.Info("Images Added", "1 image(s) added successfully"))
	sent := newSentSet(q.Pending("sess-1"))

	n := <-live
	require.Equal(t, early.ID, n.ID)
	require.False(t, sent.fresh(n))

	later := q.Push("sess-1", notify.Info("Image Removed", "Image removed"))
	n = <-live
	require.Equal(t, later.ID, n.ID)
	require.True(t, sent.fresh(n))
}

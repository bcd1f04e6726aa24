package report

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/findme/internal/features/intake"
	"github.com/xyz-asif/findme/internal/middleware"
	"github.com/xyz-asif/findme/internal/pkg/token"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
}

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newClient(t *testing.T, s *Service) *client {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session(middleware.SessionConfig{Secret: "test", TTL: time.Hour}))
	RegisterRoutes(r.Group("/api/v1"), s)
	return &client{t: t, router: r}
}

func (c *client) do(req *http.Request) (int, envelope) {
	c.t.Helper()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	if tok := w.Header().Get(middleware.SessionHeader); tok != "" {
		c.token = tok
	}

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(c.t, w.Code, env.StatusCode)
	return w.Code, env
}

func (c *client) json(method, path, body string) (int, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) upload(names ...string) (int, envelope) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, name := range names {
		// CreateFormFile sends application/octet-stream, so the type is sniffed
		part, err := w.CreateFormFile("images", name)
		require.NoError(c.t, err)
		_, _ = part.Write(pngHeader)
	}
	require.NoError(c.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report/images", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHandler_FullReportFlow(t *testing.T) {
	fake := &fakeSubmitter{}
	s, _ := newTestService(fake)
	c := newClient(t, s)

	code, env := c.json(http.MethodGet, "/api/v1/report", "")
	require.Equal(t, http.StatusOK, code)
	view := decode[View](t, env.Data)
	require.False(t, view.CanSubmit)
	require.Equal(t, 10, view.MaxImages)

	code, env = c.json(http.MethodPost, "/api/v1/report/submit", "")
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "NO_IMAGES", env.Code)

	code, env = c.upload("one.png", "two.png")
	require.Equal(t, http.StatusOK, code)
	imgs := decode[ImagesResponse](t, env.Data)
	require.Equal(t, 2, imgs.Outcome.Added)
	require.Equal(t, "image/png", imgs.Draft.Images[0].ContentType)
	require.True(t, imgs.Draft.CanSubmit)

	code, env = c.json(http.MethodPost, "/api/v1/report/submit", `{"fullName":"J"}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Equal(t, "VALIDATION_FAILED", env.Code)
	fieldErrs := decode[map[string]string](t, env.Data)
	require.Equal(t, "Full name must be at least 2 characters", fieldErrs["fullName"])
	require.Equal(t, "Age is required", fieldErrs["age"])

	body, _ := json.Marshal(janeDoe())
	code, env = c.json(http.MethodPatch, "/api/v1/report/fields", string(body))
	require.Equal(t, http.StatusOK, code)

	code, env = c.json(http.MethodPost, "/api/v1/report/submit", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Submission Successful", env.Message)
	done := decode[SubmitResponse](t, env.Data)
	require.Zero(t, done.Draft.ImageCount)
	require.Empty(t, done.Draft.Values)
	require.Len(t, fake.got, 1)
	require.Equal(t, 2, len(fake.got[0].Images))
}

func TestHandler_RemoveImage(t *testing.T) {
	s, _ := newTestService(&fakeSubmitter{})
	c := newClient(t, s)

	c.upload("a.png", "b.png", "c.png")

	code, env := c.json(http.MethodDelete, "/api/v1/report/images/1", "")
	require.Equal(t, http.StatusOK, code)
	view := decode[View](t, env.Data)
	require.Equal(t, []string{"a.png", "c.png"}, []string{view.Images[0].Name, view.Images[1].Name})

	code, _ = c.json(http.MethodDelete, "/api/v1/report/images/7", "")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = c.json(http.MethodDelete, "/api/v1/report/images/x", "")
	require.Equal(t, http.StatusBadRequest, code)

	code, env = c.json(http.MethodDelete, "/api/v1/report/images", "")
	require.Equal(t, http.StatusOK, code)
	require.Zero(t, decode[View](t, env.Data).ImageCount)
}

func TestHandler_ElevenThenFive(t *testing.T) {
	s, q := newTestService(&fakeSubmitter{})
	c := newClient(t, s)

	names := make([]string, 11)
	for i := range names {
		names[i] = "img.png"
	}
	_, env := c.upload(names...)
	imgs := decode[ImagesResponse](t, env.Data)
	require.True(t, imgs.Outcome.TooMany)
	require.Zero(t, imgs.Draft.ImageCount)

	_, env = c.upload(names[:5]...)
	imgs = decode[ImagesResponse](t, env.Data)
	require.Equal(t, 5, imgs.Outcome.Added)
	require.Equal(t, 5, imgs.Draft.ImageCount)

	// the two notices went to this client's session
	claims, err := token.ValidateSessionToken(c.token, "test")
	require.NoError(t, err)
	var titles []string
	for _, n := range q.Pending(claims.SessionID) {
		titles = append(titles, n.Title)
	}
	require.Equal(t, []string{"Too many images", "Images added"}, titles)
}

func TestHandler_MissingImages(t *testing.T) {
	s, _ := newTestService(&fakeSubmitter{})
	c := newClient(t, s)

	code, env := c.json(http.MethodPost, "/api/v1/report/images", "{}")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "MISSING_FILE", env.Code)
}

func TestHandler_EmptyBatchIsNoop(t *testing.T) {
	s, q := newTestService(&fakeSubmitter{})
	c := newClient(t, s)

	code, env := c.upload()
	require.Equal(t, http.StatusOK, code)
	imgs := decode[ImagesResponse](t, env.Data)
	require.Equal(t, intake.Outcome{}, imgs.Outcome)
	require.Empty(t, imgs.Draft.Images)

	claims, err := token.ValidateSessionToken(c.token, "test")
	require.NoError(t, err)
	require.Empty(t, q.Pending(claims.SessionID))
}

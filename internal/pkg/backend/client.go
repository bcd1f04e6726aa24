// Package backend is the HTTP client for the intake backend that receives
// reports and callback requests.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/pkg/errors"

	"github.com/xyz-asif/findme/internal/pkg/logger"
	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

const maxErrorBody = 1 << 20

var (
	// ErrUnreachable means the request never got an HTTP response.
	ErrUnreachable = errors.New("intake backend unreachable")
	// ErrBadResponse means a success status came back with a body that is not JSON.
	ErrBadResponse = errors.New("malformed response from intake backend")
)

// APIError is a non-2xx answer. Detail is empty when the body carried no
// usable message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("intake backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("intake backend returned status %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error { return apperrors.ErrUpstream }

// Part is one file in a multipart body.
type Part struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// Multipart is an ordered multipart/form-data body.
type Multipart struct {
	fields [][2]string
	files  []Part
}

func (m *Multipart) Field(name, value string) *Multipart {
	m.fields = append(m.fields, [2]string{name, value})
	return m
}

func (m *Multipart) File(p Part) *Multipart {
	m.files = append(m.files, p)
	return m
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (m *Multipart) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range m.fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for _, p := range m.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(p.Field), quoteEscaper.Replace(p.FileName)))
		ct := p.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := pw.Write(p.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient talks to baseURL. A nil httpClient gets one without a timeout;
// failures surface only through the transport's own errors.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        logger.Default().Named("backend"),
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// PostMultipart sends body to path and decodes a 2xx JSON answer into out
// (out may be nil; the body must still be JSON).
func (c *Client) PostMultipart(ctx context.Context, path string, body *Multipart, out interface{}) error {
	buf, contentType, err := body.encode()
	if err != nil {
		return errors.Wrap(err, "encode multipart body")
	}

	target := c.url(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, buf)
	if err != nil {
		return errors.Wrapf(err, "build request for %s", target)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("POST %s (%d bytes, %d files)", target, buf.Len(), len(body.files))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, "post %s", target)
		}
		c.log.Warn("POST %s failed: %v", target, err)
		return errors.Wrapf(ErrUnreachable, "post %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: detailMessage(raw)}
		c.log.Warn("POST %s: %v", target, apiErr)
		return apiErr
	}

	var sink json.RawMessage
	if out == nil {
		out = &sink
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(ErrBadResponse, "post %s: %v", target, err)
	}
	return nil
}

// detailMessage pulls a readable message out of an error body of the form
// {"detail": "..."} or {"detail": [{"msg": "..."}, ...]}.
func detailMessage(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// Ping checks that the backend answers on its root path.
func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/"), nil)
	if err != nil {
		return "", errors.Wrap(err, "build ping request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(ErrUnreachable, "ping %s: %v", c.baseURL, err)
	}
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrapf(ErrBadResponse, "ping %s: %v", c.baseURL, err)
	}
	return body.Message, nil
}

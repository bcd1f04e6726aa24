package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/pkg/logger"
)

type LoggerConfig struct {
	LogRequestBody  bool
	LogResponseBody bool  // error responses are always logged
	MaxBodySize     int64 // bytes captured per body
	SkipPaths       []string
	// Bodies of these content types are never read (image uploads)
	SkipBodyTypes []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody: true,
		MaxBodySize:    2048,
		SkipPaths:      []string{"/api/v1/health"},
		SkipBodyTypes:  []string{"multipart/form-data"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

// LoggerWithConfig writes one summary line per request through the "http"
// logger; bodies go out at debug level, or at the summary's level when the
// request failed.
func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	log := logger.Default().Named("http")
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		entry := requestEntry{
			method: c.Request.Method,
			path:   c.Request.URL.Path,
			query:  c.Request.URL.RawQuery,
			ip:     c.ClientIP(),
		}
		if config.LogRequestBody {
			entry.requestBody = captureRequestBody(c, config)
		}

		writer := &limitedResponseWriter{ResponseWriter: c.Writer, maxSize: config.MaxBodySize}
		c.Writer = writer

		c.Next()

		entry.status = writer.Status()
		entry.latency = time.Since(start)
		entry.size = writer.size
		entry.session = SessionID(c)
		if writer.body.Len() > 0 && (config.LogResponseBody || entry.status >= 400) {
			entry.responseBody = sanitizeResponseBody(writer.body.String())
		}

		entry.write(log)
	}
}

type requestEntry struct {
	method, path, query, ip string
	session                 string
	status                  int
	latency                 time.Duration
	size                    int64
	requestBody             string
	responseBody            string
}

func (e requestEntry) summary() string {
	target := e.path
	if e.query != "" {
		target += "?" + truncateString(e.query, 100)
	}
	line := fmt.Sprintf("%s %s %d %v %s ip=%s", e.method, target, e.status, e.latency, formatSize(e.size), e.ip)
	if e.session != "" {
		line += " session=" + e.session
	}
	return line
}

func (e requestEntry) write(log *logger.Logger) {
	emit := log.Info
	switch {
	case e.status >= 500:
		emit = log.Error
	case e.status >= 400:
		emit = log.Warn
	}
	emit("%s", e.summary())

	detail := log.Debug
	if e.status >= 400 {
		detail = emit
	}
	if e.requestBody != "" {
		detail("  request: %s", e.requestBody)
	}
	if e.responseBody != "" {
		detail("  response: %s", e.responseBody)
	}
}

// captureRequestBody reads and restores the body, or describes it when it
// is an upload or over the size limit.
func captureRequestBody(c *gin.Context, config LoggerConfig) string {
	if c.Request.Body == nil || c.Request.ContentLength <= 0 {
		return ""
	}
	contentType := c.GetHeader("Content-Type")
	if skipBody(config, contentType) {
		return fmt.Sprintf("[%s body, %s]", strings.SplitN(contentType, ";", 2)[0], formatSize(c.Request.ContentLength))
	}
	if c.Request.ContentLength > config.MaxBodySize {
		return "[Request body too large to log]"
	}
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	return sanitizeBody(string(bodyBytes), contentType)
}

// limitedResponseWriter tees at most maxSize bytes of the response.
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	if w.size+int64(len(b)) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)
	return n, err
}

func skipBody(config LoggerConfig, contentType string) bool {
	for _, t := range config.SkipBodyTypes {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 1024 {
		return "[Body too large to log]"
	}
	if strings.Contains(contentType, "application/json") {
		if masked, ok := maskJSON(body); ok {
			return masked
		}
	}
	return truncateString(body, 200)
}

func sanitizeResponseBody(body string) string {
	if len(body) == 0 {
		return ""
	}
	if masked, ok := maskJSON(body); ok {
		return truncateString(masked, 500)
	}
	return truncateString(body, 200)
}

// maskJSON re-encodes body with sensitive values replaced.
func maskJSON(body string) (string, bool) {
	var data interface{}
	if json.Unmarshal([]byte(body), &data) != nil {
		return "", false
	}
	out, err := json.Marshal(hideSensitiveFields(data))
	if err != nil {
		return "", false
	}
	return string(out), true
}

// Values under keys containing any of these are masked.
var sensitiveFields = []string{"phone", "token", "secret", "auth", "dataurl"}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	for _, s := range sensitiveFields {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

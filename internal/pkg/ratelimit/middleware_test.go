package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim, ByIP))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(429), body["statusCode"])
	require.Equal(t, "Rate limit exceeded. Try again later.", body["message"])
	// make sure our extra fields are present in data
	data := body["data"].(map[string]any)
	require.Contains(t, data, "retry_after")
	require.Contains(t, data, "reset_time")
}

func TestMiddleware_KeyedByContextValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(1, time.Minute)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("sessionID", c.GetHeader("X-Session"))
		c.Next()
	})
	r.Use(Middleware(lim, ByContextKey("sessionID")))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	send := func(session string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Session", session)
		r.ServeHTTP(w, req)
		return w
	}

	first := send("a")
	require.Equal(t, 200, first.Code)
	require.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	require.Equal(t, 429, send("a").Code)
	// a different session has its own bucket
	require.Equal(t, 200, send("b").Code)
}

func TestCleanup_DropsExpiredKeys(t *testing.T) {
	lim := New(5, time.Millisecond)
	require.True(t, lim.Allow("k"))
	time.Sleep(5 * time.Millisecond)
	lim.Cleanup()
	require.Equal(t, 5, lim.GetRemaining("k"))
}

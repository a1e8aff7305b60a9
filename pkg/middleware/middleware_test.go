package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Corner-venturo/Corner-sub004/pkg/notify"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware(), NoticeMiddleware())
	r.Use(mw...)
	r.GET("/who", func(c *gin.Context) {
		notify.FromContext(c.Request.Context()).Success("hello")
		utils.RespondSuccess(c, gin.H{
			"user":      c.GetString(utils.UserIDKey),
			"workspace": c.GetString(utils.WorkspaceKey),
		}, "")
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	utils.SetJWTSecret("mw-secret")
	r := newRouter(JWTAuthMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.CreateToken("u-1", "ws-9", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TraceID string            `json:"trace_id"`
		Data    map[string]string `json:"data"`
		Notices []notify.Notice   `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u-1", resp.Data["user"])
	assert.Equal(t, "ws-9", resp.Data["workspace"])
	assert.Equal(t, w.Header().Get(TraceIDHeader), resp.TraceID)
	assert.Equal(t, []notify.Notice{{Level: notify.LevelSuccess, Message: "hello"}}, resp.Notices)
}

func TestTraceIDMiddleware_KeepsValidUpstreamID(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(TraceIDHeader, "0b7c3f8e-5a1d-4c44-9a39-4f1fd2f0a9b1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "0b7c3f8e-5a1d-4c44-9a39-4f1fd2f0a9b1", w.Header().Get(TraceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(TraceIDHeader, "nope")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "nope", w.Header().Get(TraceIDHeader))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2)
	r := newRouter(rl.Limit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

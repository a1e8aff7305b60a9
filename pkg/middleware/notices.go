package middleware

import (
	"github.com/Corner-venturo/Corner-sub004/pkg/notify"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
)

// NoticeMiddleware attaches a notify.Collector to the request context so
// services can report toasts that end up in the response envelope.
func NoticeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		col := notify.NewCollector()
		c.Set(utils.NoticesKey, col)
		c.Request = c.Request.WithContext(notify.WithSink(c.Request.Context(), col))
		c.Next()
	}
}

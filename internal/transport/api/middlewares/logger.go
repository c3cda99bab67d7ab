package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger логирует каждый запрос. Приватные ошибки обработчиков попадают в лог, клиенту они не показываются.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "api",
		"module":    "http",
	})

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"uri":      c.Request.RequestURI,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"size":     c.Writer.Size(),
			"clientIP": c.ClientIP(),
		}
		if userID := CurrentUserID(c); userID != "" {
			fields["userID"] = userID
		}
		requestLog := entry.WithFields(fields)

		if len(c.Errors) > 0 {
			requestLog = requestLog.WithField("errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500: //nolint:mnd
			requestLog.Error("request")
		case status >= 400: //nolint:mnd
			requestLog.Warn("request")
		default:
			requestLog.Info("request")
		}
	}
}

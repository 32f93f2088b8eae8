package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditLog records every successful write operation on the payment
// protocol to a dedicated audit logger. Reads and failed requests are
// not audited.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action := mapPathToAction(c.Request.URL.Path)
		if action == "" {
			return
		}

		log.Info().
			Str("action", action).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("audit")
	}
}

func mapPathToAction(path string) string {
	switch path {
	case "/scan-qr":
		return "session.create"
	case "/verify-bank":
		return "session.verify"
	case "/process-payment":
		return "payment.initiate"
	default:
		return ""
	}
}

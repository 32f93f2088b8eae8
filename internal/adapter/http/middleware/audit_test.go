package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func auditRouter(buf *bytes.Buffer, status int) *gin.Engine {
	router := gin.New()
	router.Use(AuditLog(zerolog.New(buf)))
	router.POST("/scan-qr", func(c *gin.Context) { c.JSON(status, gin.H{}) })
	router.GET("/payment-status/:sessionId", func(c *gin.Context) { c.JSON(200, gin.H{}) })
	return router
}

func TestAuditLog_RecordsSuccessfulWrites(t *testing.T) {
	var buf bytes.Buffer
	router := auditRouter(&buf, 200)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scan-qr", nil))

	assert.Contains(t, buf.String(), `"action":"session.create"`)
	assert.Contains(t, buf.String(), `"audit"`)
}

func TestAuditLog_SkipsReads(t *testing.T) {
	var buf bytes.Buffer
	router := auditRouter(&buf, 200)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-status/sess-1", nil))

	assert.Empty(t, buf.String())
}

func TestAuditLog_SkipsFailedWrites(t *testing.T) {
	var buf bytes.Buffer
	router := auditRouter(&buf, 400)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scan-qr", nil))

	assert.Empty(t, buf.String())
}

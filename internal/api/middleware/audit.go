package middleware

import (
	"ForumFlare/internal/pkg/consts"
	"bytes"
	"io"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const auditBodyLimit = 4096

type auditWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *auditWriter) Write(b []byte) (int, error) {
	if room := auditBodyLimit - w.body.Len(); room > 0 {
		if len(b) > room {
			w.body.Write(b[:room])
		} else {
			w.body.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// AuditMiddleware 记录请求与响应体，失败的请求提升为 Warn
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/ping" {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, auditBodyLimit))
			rest, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), bytes.NewReader(rest)))
		}

		w := &auditWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		start := time.Now()

		c.Next()

		level := log.LevelDebug
		if c.Writer.Status() >= 400 {
			level = log.LevelWarn
		}
		log.Log(ctx, level, "audit",
			log.String("method", c.Request.Method),
			log.String("route", c.FullPath()),
			log.String("email", c.GetString(consts.CtxEmail)),
			log.String("req_body", string(reqBody)),
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(start)),
			log.String("res_body", w.body.String()),
		)
	}
}

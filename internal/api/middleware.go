package api

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"github.com/ppgiii/ViZ/pkg/logger"
	"github.com/ppgiii/ViZ/pkg/util"
)

// statusRecorder captures the status code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Hijack keeps the websocket upgrade working behind the recorder.
func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := rec.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}

	return hijacker.Hijack()
}

// requestContext stores the inbound request id and client ip on the context.
// A request id is generated when the X-Request-Id header is absent.
func requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get("X-Request-Id"))
		ctx = util.WithClientIP(ctx, r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger writes one log line per completed request.
func requestLogger(log logger.Interface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.InfoContext(r.Context(), "http request",
			logger.NewField("method", r.Method),
			logger.NewField("path", r.URL.Path),
			logger.NewField("status_code", rec.status),
			logger.NewField("elapsed", time.Since(start).Seconds()),
			logger.NewField("ip", util.GetClientIP(r.Context())),
		)
	})
}

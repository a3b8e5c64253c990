package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pgic/pgic-backend/pkg/ctxutil"
)

type requestLogKey struct{}

// requestLog collects fields that inner middleware learn after Logger has
// already handed the request on.
type requestLog struct {
	actorID int64
}

// noteActor records the acting user for the access log line of ctx's request.
func noteActor(ctx context.Context, id int64) {
	if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		rl.actorID = id
	}
}

// Logger writes one "http.request" line per request. Level follows the
// status: ERROR for 5xx, WARN for 409 and 429, INFO otherwise.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rl := &requestLog{}
			if id, ok := ctxutil.ActorIDFromCtx(r.Context()); ok {
				rl.actorID = id
			}
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestLogKey{}, rl)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if rl.actorID > 0 {
				attrs = append(attrs, slog.Int64("actor_id", rl.actorID))
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusConflict, status == http.StatusTooManyRequests:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// statusWriter captures the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

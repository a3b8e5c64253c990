package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/pgic/pgic-backend/pkg/ctxutil"
)

// ActorIDHeader identifies the acting user. Authentication happens upstream;
// the registry only records who acted.
const ActorIDHeader = "X-Actor-Id"

// Actor returns middleware that puts the acting user and the client IP into
// the request context, where audit entries pick them up.
// A malformed actor header is rejected with 400.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw := strings.TrimSpace(r.Header.Get(ActorIDHeader)); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					http.Error(w, "invalid "+ActorIDHeader+" header", http.StatusBadRequest)
					return
				}
				ctx = ctxutil.WithActorID(ctx, id)
				noteActor(ctx, id)
			}

			if ip := ClientIP(r); ip != "" {
				ctx = ctxutil.WithClientIP(ctx, ip)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP returns the originating address of r: the first X-Forwarded-For
// hop when present, the remote address otherwise. Unparseable values yield "".
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}
	return ""
}

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aster-works/agora/pkg/domain/model/auth"
	"github.com/aster-works/agora/pkg/service/authn"
	"github.com/aster-works/agora/pkg/utils/logging"
)

// principalMiddleware resolves the Authorization header to a principal
// and stores it on the request context. Requests without a credential
// proceed as anonymous; routes that need identity use requireAuth.
func principalMiddleware(svc authn.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || svc == nil {
				ctx := auth.ContextWith(r.Context(), auth.NewAnonymous())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			p, err := svc.Verify(r.Context(), token)
			if err != nil {
				// ErrInvalidToken maps to 401, upstream outages to 503.
				respondErr(r.Context(), w, err)
				return
			}

			ctx := auth.ContextWith(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// requireAuth rejects anonymous requests.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := auth.FromContext(r.Context())
		if p.IsAnonymous() {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// adminOnly rejects callers without the admin flag.
func adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := auth.FromContext(r.Context())
		if p.IsAnonymous() {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		if !p.Admin {
			http.Error(w, "Administrator privileges required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

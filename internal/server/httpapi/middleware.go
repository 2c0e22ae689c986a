package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/acadex/acadex/internal/common"
	"github.com/acadex/acadex/internal/server/auth"
	"github.com/acadex/acadex/internal/server/models"
	"github.com/google/uuid"
)

type ctxKey string

const userKey ctxKey = "user"

// currentUser extracts the authenticated identity set by requireAuth.
func currentUser(ctx context.Context) *models.User {
	if u, ok := ctx.Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}

// requireAuth verifies the bearer token and resolves the bound identity,
// injecting it into the request context. Absent, malformed, invalid or
// expired tokens all end the chain with 401.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		if header == "" {
			writeError(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerPrefix) {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := s.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				writeError(w, http.StatusUnauthorized, "User not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests tags each request with an ID and logs method, path and remote.
func (s *HTTPServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		s.logger.Info(r.Context(), "request",
			"req_id", reqID, "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// allowCORS mirrors the permissive CORS policy of the mobile backend: any
// origin may call the API, tokens travel in headers rather than cookies.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

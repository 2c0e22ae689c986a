package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/acadex/acadex/internal/server/models"
	"github.com/acadex/acadex/internal/server/users"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// writeUserError maps identity-service failures to the wire contract's
// status codes and messages.
func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Name, password and either email or phone are required")
	case errors.Is(err, users.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "Missing credentials")
	case errors.Is(err, users.ErrUserExists):
		writeError(w, http.StatusConflict, "User already exists")
	case errors.Is(err, users.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, users.ErrInvalidOTP):
		writeError(w, http.StatusUnauthorized, "Invalid OTP")
	case errors.Is(err, users.ErrInvalidPassword):
		writeError(w, http.StatusUnauthorized, "Invalid password")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user.Public()})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Phone, req.Password, req.OTP)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user.Public()})
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.PublicUser{"user": user.Public()})
}

func (s *HTTPServer) handleCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"courses": s.catalog.Courses()})
}

func (s *HTTPServer) handleCoursesByCategory(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["category"]
	items, ok := s.catalog.Category(key)
	if !ok {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *HTTPServer) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.catalog.LiveClasses()})
}

func (s *HTTPServer) handleDownloads(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": s.downloads.List(r.Context(), user.ID)})
}

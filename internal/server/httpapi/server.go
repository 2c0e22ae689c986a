// Package httpapi exposes the Acadex wire protocol: registration, login,
// authenticated identity lookup, and the catalog/downloads endpoints consumed
// by the mobile client.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/acadex/acadex/internal/logging"
	"github.com/acadex/acadex/internal/server/catalog"
	"github.com/acadex/acadex/internal/server/downloads"
	"github.com/acadex/acadex/internal/server/users"
	"github.com/gorilla/mux"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	catalog   *catalog.Service
	downloads *downloads.Service
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, cs *catalog.Service, ds *downloads.Service, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		catalog:   cs,
		downloads: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the route table. Split out from Run so tests can exercise the
// full middleware chain through httptest.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(allowCORS)
	r.Use(s.logRequests)

	r.HandleFunc("/api/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/login", s.handleLogin).Methods("POST")
	r.Handle("/api/me", s.requireAuth(http.HandlerFunc(s.handleMe))).Methods("GET")

	r.HandleFunc("/api/courses", s.handleCourses).Methods("GET")
	r.HandleFunc("/api/courses/{category}", s.handleCoursesByCategory).Methods("GET")
	r.HandleFunc("/api/live", s.handleLive).Methods("GET")
	r.Handle("/api/downloads", s.requireAuth(http.HandlerFunc(s.handleDownloads))).Methods("GET")

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

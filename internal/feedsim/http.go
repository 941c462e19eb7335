package feedsim

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/keelan/gridiron/pkg/logger"
)

// Server timeout constants.
const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Sim serves a generated Dataset behind the feed endpoints.
type Sim struct {
	addr    string
	dataset *Dataset
	logger  logger.Logger
	srv     *http.Server
}

// New creates a simulator for the given dataset.
func New(addr string, dataset *Dataset, opts ...Option) *Sim {
	s := &Sim{
		addr:    addr,
		dataset: dataset,
		logger:  logger.Get().Named("feedsim"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router for the feed endpoints.
func (s *Sim) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/players", s.handlePlayers)
	r.Get("/projections", s.handleProjections)
	r.Get("/adp", s.handleADP)
	r.Get("/rankings", s.handleRankings)
	r.Get("/leagues/{league}/roster", s.handleRoster)
	return r
}

// Run serves until the context is cancelled, then shuts down cleanly.
func (s *Sim) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "feed simulator listening",
			logger.String("addr", s.addr),
			logger.Int("players", len(s.dataset.Players)))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Sim) handlePlayers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.dataset.Players)
}

func (s *Sim) handleProjections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.dataset.Projections)
}

func (s *Sim) handleADP(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.dataset.ADP)
}

func (s *Sim) handleRankings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.dataset.Rankings)
}

func (s *Sim) handleRoster(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.dataset.Roster)
}

func (s *Sim) writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn(r.Context(), "failed to encode feed response",
			logger.String("path", r.URL.Path), logger.Error(err))
	}
}

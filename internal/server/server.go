package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"threatdigest/internal/report"
)

// Server previews the generated site: static report pages plus a small
// read-only JSON API over the persisted artifacts.
type Server struct {
	cfg    *Config
	router *mux.Router
}

func New(cfg *Config) *Server {
	s := &Server{cfg: cfg, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/manifest", s.handleManifest).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/reports/{week}", s.handleReport).Methods(http.MethodGet)
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.SiteDir)))
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) StartMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "err", err)
		}
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	s.serveJSONFile(w, r, filepath.Join(s.cfg.ReportsDir, "manifest.json"))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	week := mux.Vars(r)["week"]
	if _, _, err := report.ParseWeekID(week); err != nil {
		http.Error(w, "invalid week id", http.StatusBadRequest)
		return
	}
	s.serveJSONFile(w, r, filepath.Join(s.cfg.ReportsDir, week+".json"))
}

func (s *Server) serveJSONFile(w http.ResponseWriter, r *http.Request, path string) {
	b, err := os.ReadFile(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

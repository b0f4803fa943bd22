// Server is the presenter layer: a JSON API plus a websocket endpoint.
// It keeps no dashboard state of its own; every request and every
// websocket message triggers one full pipeline re-run over the input
// file, and errors are surfaced to the client as messages, never retried.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/boracolakoglu/energy-dashboard/pkg/config"
	"github.com/boracolakoglu/energy-dashboard/pkg/loader"
	"github.com/boracolakoglu/energy-dashboard/pkg/pipeline"
	"github.com/boracolakoglu/energy-dashboard/pkg/types"
)

const dateLayout = "2006-01-02"

type Server struct {
	cfg    *config.DashboardConfig
	logger *slog.Logger

	upgrader websocket.Upgrader

	wsClients      map[*websocket.Conn]bool
	wsClientsMutex sync.RWMutex
}

func New(cfg *config.DashboardConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in development
			},
		},
		wsClients: make(map[*websocket.Conn]bool),
	}
}

// Routes wires up all HTTP and websocket endpoints.
func (s *Server) Routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleStatus).Methods("GET")
	router.HandleFunc("/api/dashboard", s.handleDashboard).Methods("GET")
	router.HandleFunc("/api/appliances", s.handleAppliances).Methods("GET")
	router.HandleFunc("/ws", s.handleWebSocket)
	return router
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Message: "Home Energy Dashboard API",
		Status:  "running",
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var appliances []string
	if raw := q.Get("appliances"); raw != "" {
		appliances = strings.Split(raw, ",")
	}
	opts, err := s.parseOptions(interactionRequest{
		Unit:       q.Get("unit"),
		Bucket:     q.Get("bucket"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Appliances: appliances,
		Weather:    q.Get("weather"),
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := pipeline.Run(s.cfg, opts, s.logger)
	if err != nil {
		s.logger.Error("pipeline run failed", "error", err)
		writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAppliances(w http.ResponseWriter, r *http.Request) {
	appliances, err := pipeline.ListAppliances(s.cfg)
	if err != nil {
		s.logger.Error("listing appliances failed", "error", err)
		writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, appliancesResponse{Appliances: appliances})
}

// parseOptions turns one interaction message into pipeline options,
// applying configured defaults for anything left unset.
func (s *Server) parseOptions(req interactionRequest) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error

	opts.Unit, err = types.ParseUnit(req.Unit)
	if err != nil {
		return opts, err
	}

	bucket := req.Bucket
	if bucket == "" {
		bucket = s.cfg.Pipeline.DefaultBucket
	}
	opts.Bucket, err = types.ParseBucket(bucket)
	if err != nil {
		return opts, err
	}

	if req.From != "" {
		opts.From, err = time.Parse(dateLayout, req.From)
		if err != nil {
			return opts, err
		}
	}
	if req.To != "" {
		to, err := time.Parse(dateLayout, req.To)
		if err != nil {
			return opts, err
		}
		// The "to" date is inclusive: cover the whole day.
		opts.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	for _, name := range req.Appliances {
		if name = strings.TrimSpace(name); name != "" {
			opts.Appliances = append(opts.Appliances, name)
		}
	}
	opts.WeatherColumn = req.Weather
	return opts, nil
}

func statusForError(err error) int {
	var loadErr *loader.LoadError
	var parseErr *loader.ParseError
	var missingErr *types.MissingColumnError
	switch {
	case errors.As(err, &missingErr), errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &loadErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

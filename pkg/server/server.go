package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/planu/pkg/config"
	"github.com/yurifrl/planu/pkg/csv"
	"github.com/yurifrl/planu/pkg/models"
	"github.com/yurifrl/planu/pkg/parser"
)

// Server handles HTTP requests for statement processing
type Server struct {
	config   *config.Config
	logger   *log.Logger
	mux      *http.ServeMux
	template *template.Template
	parser   *parser.Parser
	tables   sync.Map
}

// New creates a new HTTP server
func New(config *config.Config, logger *log.Logger) *Server {
	tmpl := template.Must(template.ParseGlob("templates/*.html"))
	return &Server{
		config:   config,
		logger:   logger,
		mux:      http.NewServeMux(),
		template: tmpl,
		parser:   parser.New(logger),
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	// homepage
	s.mux.HandleFunc("/", s.withLogging(s.handleHome))

	// upload + download endpoints
	s.mux.HandleFunc("/api/process", s.withLogging(s.handleProcess))
	s.mux.HandleFunc("/api/files/", s.withLogging(s.handleFiles))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if err := s.template.ExecuteTemplate(w, "index.html", nil); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
		return
	}
}

// handleProcess accepts an uploaded statement, parses it and returns the
// full table plus the negative subset. The parsed table is cached so the
// CSVs can be downloaded afterwards.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read file", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	table, err := s.parser.ProcessBytes(data, header.Filename)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process file", err)
		return
	}

	negativos := table.Negativos()
	baseName := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	filename := baseName + "-planu.csv"
	negFilename := baseName + "-negativos-planu.csv"
	s.tables.Store(filename, table)
	s.tables.Store(negFilename, negativos)

	s.logger.Info("processed statement", "file", header.Filename, "records", len(table), "negativos", len(negativos))

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "success",
		"file":            filename,
		"file_negativos":  negFilename,
		"data":            table,
		"negativos":       negativos,
		"count":           len(table),
		"count_negativos": len(negativos),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleFiles serves the generated CSV for a previously processed statement.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filename == "" {
		s.respondError(w, r, http.StatusBadRequest, "filename required", nil)
		return
	}

	value, ok := s.tables.Load(filename)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "file not found", nil)
		return
	}
	table, ok := value.(models.Table)
	if !ok {
		s.respondError(w, r, http.StatusInternalServerError, "internal type assertion error", nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(csv.Create(table, nil)); err != nil {
		s.logger.Warn("failed to write csv response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}

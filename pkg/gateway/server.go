// Package gateway exposes the import policy engine over HTTP. It is the
// admission surface in front of the sandbox runner: submissions with any
// unsupported import are refused here, before anything executes.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/AR1947/dart-pad/pkg/audit"
	"github.com/AR1947/dart-pad/pkg/imports"
	"github.com/AR1947/dart-pad/pkg/project"
	"github.com/AR1947/dart-pad/pkg/version"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr       string
	policy     *imports.Policy
	templates  project.Templates
	authorizer Authorizer
	recorder   audit.Recorder
	logger     *slog.Logger
	started    time.Time
}

func NewServer(addr string, policy *imports.Policy, templates project.Templates, authorizer Authorizer) *Server {
	if authorizer == nil {
		authorizer = NoopAuthorizer{}
	}
	return &Server{
		addr:       addr,
		policy:     policy,
		templates:  templates,
		authorizer: authorizer,
		recorder:   audit.NopRecorder{},
	}
}

func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Server) SetRecorder(recorder audit.Recorder) {
	if recorder != nil {
		s.recorder = recorder
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.started = time.Now()

	httpServer := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.logInfo("gateway_listening", "addr", s.addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// analyzeRequest carries pre-parsed import declarations. localFiles are
// sibling filenames of the submission, already sanitized upstream; the
// gateway passes them through untouched.
type analyzeRequest struct {
	Imports    []imports.ImportDecl `json:"imports"`
	LocalFiles []string             `json:"localFiles,omitempty"`
}

type analyzeResponse struct {
	ID                 string               `json:"id"`
	UsesFlutter        bool                 `json:"usesFlutter"`
	UsesFirebase       bool                 `json:"usesFirebase"`
	UnsupportedImports []imports.ImportDecl `json:"unsupportedImports"`
	DeprecatedPackages []string             `json:"deprecatedPackages,omitempty"`
	ProjectPath        string               `json:"projectPath"`
	SummaryPath        string               `json:"summaryPath"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.authorizer.Allow(r.Context(), r.RemoteAddr); err != nil {
		s.logWarn("submission_denied", "remote", r.RemoteAddr, "error", err)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	local := imports.LocalSet(req.LocalFiles)
	profile := s.policy.DetectProfile(req.Imports)
	rejected := s.policy.CollectUnsupported(req.Imports, local)
	deprecated := s.policy.CollectDeprecated(req.Imports)

	resp := analyzeResponse{
		ID:                 uuid.NewString(),
		UsesFlutter:        profile.UsesFlutter,
		UsesFirebase:       profile.UsesFirebase,
		UnsupportedImports: rejected,
		DeprecatedPackages: deprecated,
		ProjectPath:        s.templates.ProjectFor(profile),
		SummaryPath:        s.templates.SummaryPath(profile),
	}
	if resp.UnsupportedImports == nil {
		resp.UnsupportedImports = []imports.ImportDecl{}
	}

	event := audit.Event{
		SubmissionID: resp.ID,
		UsesFlutter:  profile.UsesFlutter,
		UsesFirebase: profile.UsesFirebase,
		Deprecated:   deprecated,
	}
	for _, decl := range rejected {
		event.Rejected = append(event.Rejected, decl.URI)
	}
	if err := s.recorder.Record(event); err != nil {
		s.logError("audit_record_failed", "error", err)
	}

	s.logInfo("submission_analyzed",
		"id", resp.ID,
		"imports", len(req.Imports),
		"rejected", len(rejected),
		"usesFlutter", profile.UsesFlutter,
		"usesFirebase", profile.UsesFirebase,
	)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"version": version.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Server) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Server) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}

func (s *Server) Addr() string {
	return s.addr
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/michaelbrown/runbox/internal/engine"
)

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- Handlers ---

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": serviceName,
		"status":  "running",
		"version": version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"languages": s.exec.Languages(),
	})
}

// handleExecute runs a snippet and always answers 200 for processable
// requests; failures travel in-band as exit_code 1 plus a stderr diagnostic.
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req engine.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	resp := s.exec.Execute(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"findash/internal/core"
	"findash/internal/importer"
	"findash/internal/importer/memory"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"projects": s.svc.ProjectNames()})
}

func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "project name is required")
		return
	}
	if err := s.svc.AddProject(r.Context(), req.Name); err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"project": req.Name})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := s.svc.Transactions(r.PathValue("name"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txns})
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var txn core.Transaction
	if err := json.NewDecoder(r.Body).Decode(&txn); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	txn.Type = core.NormalizeType(string(txn.Type))
	if err := s.svc.AddTransaction(r.Context(), r.PathValue("name"), txn); err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction index")
		return
	}
	if err := s.svc.DeleteTransaction(r.Context(), r.PathValue("name"), index); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	project := strings.TrimSpace(r.URL.Query().Get("project"))
	if project == "" {
		writeError(w, http.StatusBadRequest, "project is required")
		return
	}
	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := s.svc.View(r.Context(), project, criteria)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type importRequest struct {
	Documents []struct {
		Sheets []struct {
			Name string         `json:"name"`
			Rows []importer.Row `json:"rows"`
		} `json:"sheets"`
	} `json:"documents"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Documents) == 0 {
		writeError(w, http.StatusBadRequest, "at least one document is required")
		return
	}

	sources := make([]importer.DocumentSource, 0, len(req.Documents))
	for _, doc := range req.Documents {
		sheets := make([]importer.Sheet, 0, len(doc.Sheets))
		for _, sh := range doc.Sheets {
			sheets = append(sheets, importer.Sheet{Name: sh.Name, Rows: sh.Rows})
		}
		sources = append(sources, memory.New(sheets...))
	}

	if err := s.svc.Import(r.Context(), sources...); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": s.svc.ProjectNames()})
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

func (s *Server) getLookups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.uc.Lookups())
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.uc.Project.ListProjects(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, projects)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var project model.Project
	if err := decodeJSON(r, &project); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.Project.CreateProject(r.Context(), &project)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) listDelegations(w http.ResponseWriter, r *http.Request) {
	delegations, err := s.uc.Delegation.ListDelegations(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, delegations)
}

func (s *Server) createDelegation(w http.ResponseWriter, r *http.Request) {
	var delegation model.Delegation
	if err := decodeJSON(r, &delegation); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.Delegation.CreateDelegation(r.Context(), &delegation)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) deleteDelegation(w http.ResponseWriter, r *http.Request) {
	id := model.DelegationID(chi.URLParam(r, "delegationID"))
	if err := s.uc.Delegation.DeleteDelegation(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listDelegates(w http.ResponseWriter, r *http.Request) {
	delegates, err := s.uc.Delegation.ListDelegates(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, delegates)
}

func (s *Server) createDelegate(w http.ResponseWriter, r *http.Request) {
	var delegate model.Delegate
	if err := decodeJSON(r, &delegate); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.uc.Delegation.CreateDelegate(r.Context(), &delegate)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

type joinRoundRequest struct {
	AvailableMainActions int `json:"availableMainActions"`
}

func (s *Server) joinRound(w http.ResponseWriter, r *http.Request) {
	var req joinRoundRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	delegateID := model.DelegateID(chi.URLParam(r, "delegateID"))
	link, err := s.uc.Delegation.JoinRound(r.Context(), delegateID, roundIDParam(r), req.AvailableMainActions)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, link)
}

func (s *Server) markSent(w http.ResponseWriter, r *http.Request) {
	delegateID := model.DelegateID(chi.URLParam(r, "delegateID"))
	if err := s.uc.Delegation.MarkSent(r.Context(), delegateID, roundIDParam(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

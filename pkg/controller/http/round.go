package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/domain/types"
	"github.com/swiss-game/swiss/pkg/usecase"
)

func roundIDParam(r *http.Request) model.RoundID {
	return model.RoundID(chi.URLParam(r, "roundID"))
}

type roundRequest struct {
	Name     *string      `json:"name"`
	Tense    *types.Tense `json:"tense"`
	Deadline *string      `json:"deadline"`
	Size     *string      `json:"size"`
}

func (s *Server) listRounds(w http.ResponseWriter, r *http.Request) {
	rounds, err := s.uc.Round.ListRounds(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rounds)
}

func (s *Server) createRound(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	round := &model.Round{}
	if req.Name != nil {
		round.Name = *req.Name
	}
	if req.Tense != nil {
		round.Tense = *req.Tense
	}
	if req.Deadline != nil {
		round.Deadline = *req.Deadline
	}
	if req.Size != nil {
		round.Size = *req.Size
	}

	created, err := s.uc.Round.CreateRound(r.Context(), round)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) getRound(w http.ResponseWriter, r *http.Request) {
	round, err := s.uc.Round.GetRound(r.Context(), roundIDParam(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, round)
}

func (s *Server) updateRound(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.uc.Round.UpdateRound(r.Context(), roundIDParam(r), usecase.RoundUpdate{
		Name:     req.Name,
		Tense:    req.Tense,
		Deadline: req.Deadline,
		Size:     req.Size,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteRound(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Round.DeleteRound(r.Context(), roundIDParam(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resetRound(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Round.ResetActions(r.Context(), roundIDParam(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) roundProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.uc.Project.Summaries(r.Context(), roundIDParam(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summaries)
}

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	roundID := roundIDParam(r)
	if _, err := s.uc.Round.GetRound(r.Context(), roundID); err != nil {
		handleError(w, r, err)
		return
	}

	actions, err := s.uc.Action.ListActions(r.Context(), roundID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, actions)
}

type actionRequest struct {
	Delegate      model.DelegateID   `json:"delegate"`
	Delegation    model.DelegationID `json:"delegation"`
	Keyword       string             `json:"keyword"`
	Type          types.ActionType   `json:"type"`
	DF            float64            `json:"df"`
	Visibility    types.Visibility   `json:"visibility"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	TargetCountry string             `json:"targetCountry"`
}

func (s *Server) submitAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	submitted, err := s.uc.Action.SubmitAction(r.Context(), roundIDParam(r), &model.Action{
		Delegate:      req.Delegate,
		Delegation:    req.Delegation,
		Keyword:       req.Keyword,
		Type:          req.Type,
		DF:            req.DF,
		Visibility:    req.Visibility,
		Title:         req.Title,
		Description:   req.Description,
		TargetCountry: req.TargetCountry,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, submitted)
}

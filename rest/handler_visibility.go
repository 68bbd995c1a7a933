package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/visibility"
	"go.uber.org/zap"
)

type EvaluateRequest struct {
	CurrentStepId step.Id          `json:"currentStepId"`
	Facts         facts.Engagement `json:"facts"`
}

type EvaluateResponse struct {
	EngagementId  string               `json:"engagementId,omitempty"`
	CurrentStepId step.Id              `json:"currentStepId"`
	Step          string               `json:"step,omitempty"`
	Decisions     visibility.Decisions `json:"decisions"`
}

func (s *Server) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("error decoding evaluate request", zap.Error(err))
		respondWithError(w, http.StatusBadRequest, "invalid evaluate request")
		return
	}
	decisions := s.visibilityService.Evaluate(req.CurrentStepId, req.Facts)
	respondWithJSON(w, http.StatusOK, EvaluateResponse{
		CurrentStepId: req.CurrentStepId,
		Step:          req.CurrentStepId.Name(),
		Decisions:     decisions,
	})
}

func (s *Server) HandleEngagementVisibility(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	doc, decisions, err := s.visibilityService.EvaluateEngagement(r.Context(), id)
	if err != nil {
		logger.Error("error evaluating engagement", zap.String("engagement", id), zap.Error(err))
		respondWithStorageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, EvaluateResponse{
		EngagementId:  doc.Id,
		CurrentStepId: doc.CurrentStepId,
		Step:          doc.CurrentStepId.Name(),
		Decisions:     decisions,
	})
}

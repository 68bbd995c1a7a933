package rest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/step"
	"go.uber.org/zap"
)

func (s *Server) HandleListSteps(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, step.All())
}

func (s *Server) HandleGetStep(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	id, err := step.IdOf(name)
	if err != nil {
		var unknown step.UnknownStepNameError
		if errors.As(err, &unknown) {
			logger.Info("step does not exist", zap.String("name", name))
			respondWithError(w, http.StatusNotFound, unknown.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, step.Step{Name: name, Id: id})
}

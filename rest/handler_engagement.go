package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"go.uber.org/zap"
)

const maxDocumentSize = 1 << 20

func (s *Server) HandleCreateEngagement(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var doc facts.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid engagement")
		return
	}
	id, err := s.visibilityService.CreateEngagement(r.Context(), doc)
	if err != nil {
		respondWithStorageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) HandleSaveEngagement(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	id := mux.Vars(r)["id"]
	var doc facts.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid engagement")
		return
	}
	doc.Id = id
	if err := s.visibilityService.SaveEngagement(r.Context(), doc); err != nil {
		logger.Error("error saving engagement", zap.String("engagement", id), zap.Error(err))
		respondWithStorageError(w, err)
		return
	}
	respondOK(w, map[string]any{"saved": true})
}

func (s *Server) HandleSaveEngagementDocument(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	id := mux.Vars(r)["id"]
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "can not read engagement document")
		return
	}
	doc, err := s.visibilityService.ExtractAndSave(r.Context(), id, raw)
	if err != nil {
		logger.Error("error saving engagement document", zap.String("engagement", id), zap.Error(err))
		respondWithStorageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

func (s *Server) HandleGetEngagement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	doc, err := s.visibilityService.GetEngagement(r.Context(), id)
	if err != nil {
		logger.Info("engagement does not exist", zap.String("engagement", id))
		respondWithStorageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

func (s *Server) HandleDeleteEngagement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.visibilityService.DeleteEngagement(r.Context(), id); err != nil {
		respondWithStorageError(w, err)
		return
	}
	respondOKWithoutBody(w)
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/persistence"
	"github.com/mohitkumar/engage/service"
	"go.opencensus.io/plugin/ochttp"
	"go.uber.org/zap"
)

type Server struct {
	http.Server
	Port              int
	visibilityService *service.VisibilityService
}

func NewServer(httpPort int, visibilityService *service.VisibilityService, metricsHandler http.Handler) (*Server, error) {
	s := &Server{
		Server: http.Server{
			Addr:        fmt.Sprintf(":%d", httpPort),
			IdleTimeout: 2 * time.Second,
		},
		visibilityService: visibilityService,
		Port:              httpPort,
	}

	router := mux.NewRouter()
	router.HandleFunc("/steps", s.HandleListSteps).Methods(http.MethodGet)
	router.HandleFunc("/steps/{name}", s.HandleGetStep).Methods(http.MethodGet)

	router.HandleFunc("/visibility/evaluate", s.HandleEvaluate).Methods(http.MethodPost)

	router.HandleFunc("/engagement", s.HandleCreateEngagement).Methods(http.MethodPost)
	router.HandleFunc("/engagement/{id}", s.HandleSaveEngagement).Methods(http.MethodPut)
	router.HandleFunc("/engagement/{id}", s.HandleGetEngagement).Methods(http.MethodGet)
	router.HandleFunc("/engagement/{id}", s.HandleDeleteEngagement).Methods(http.MethodDelete)
	router.HandleFunc("/engagement/{id}/document", s.HandleSaveEngagementDocument).Methods(http.MethodPut)
	router.HandleFunc("/engagement/{id}/visibility", s.HandleEngagementVisibility).Methods(http.MethodGet)

	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}

	router.Use(loggingMiddleware)
	s.Handler = &ochttp.Handler{Handler: router}
	return s, nil
}

func (s *Server) Start() error {
	logger.Info("starting http server on", zap.Int("port", s.Port))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.Shutdown(ctx)
	if err != nil {
		logger.Error("error shutting down http server", zap.Error(err))
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.RequestURI, zap.String("method", r.Method))
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondOK(w http.ResponseWriter, message map[string]any) {
	respondWithJSON(w, http.StatusOK, message)
}

func respondOKWithoutBody(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithStorageError maps store and extraction errors onto status codes.
func respondWithStorageError(w http.ResponseWriter, err error) {
	var notFound persistence.NotFoundError
	var extractErr facts.ExtractError
	switch {
	case errors.As(err, &notFound):
		respondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &extractErr):
		respondWithError(w, http.StatusBadRequest, extractErr.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "error in underline storage layer")
	}
}

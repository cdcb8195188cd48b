package exerciselib

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exerciselib_mocks_test.go -package=exerciselib_test

type exercisesRepo interface {
	Search(ctx context.Context, params SearchParams) ([]Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleSearch).Methods("GET", "OPTIONS").Name("search-exercises")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exerciselib.search")
	defer span.End()

	query := r.URL.Query()
	limit, err := pkg.ParseIntQueryParam(query, "limit", DefaultSearchLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.Search(ctx, SearchParams{
		Search:        query.Get("search"),
		PrimaryMuscle: query.Get("muscle"),
		Equipment:     query.Get("equipment"),
		Level:         query.Get("level"),
		Limit:         limit,
	})
	if err != nil {
		log.Errorf("failed to search exercises: %s", err)
		http.Error(w, "failed to search exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exerciselib.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	exercise, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

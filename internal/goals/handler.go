package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/iquadra-Harsh/wellness-wizard/internal/auth"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	Get(ctx context.Context, userID int) (*Goals, error)
	Upsert(ctx context.Context, userID int, in GoalsInput) (*Goals, error)
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/goals", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/goals", handler.HandleUpsert).Methods("PUT", "OPTIONS").Name("set-goals")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goals, err := handler.repo.Get(ctx, userID)
	if errors.Is(err, ErrGoalsNotFound) {
		pkg.WriteJSON(w, Defaults(userID), http.StatusOK)
		return
	}
	if err != nil {
		log.Errorf("failed to get goals for user %d: %s", userID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var in GoalsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("set goals, unmarshal json params: %s", err)
		http.Error(w, "set goals failed", http.StatusBadRequest)
		return
	}

	goals, err := handler.repo.Upsert(ctx, userID, in)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to set goals for user %d: %s", userID, err)
		http.Error(w, "failed to set goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}

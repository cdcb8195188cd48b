package meals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/iquadra-Harsh/wellness-wizard/internal/auth"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/metrics"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=meals_mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, userID int, in MealInput) (*Meal, error)
	Get(ctx context.Context, id, userID int) (*Meal, error)
	List(ctx context.Context, userID int, params ListParams) ([]Meal, error)
	Update(ctx context.Context, id, userID int, patch MealPatch) (*Meal, error)
	Delete(ctx context.Context, id, userID int) (bool, error)
}

type ListResponse struct {
	Meals []Meal `json:"meals"`
	Total int    `json:"total"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           mealsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo mealsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/meals", handler.HandleList).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/meals", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/meals/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-meal")
	r.HandleFunc("/meals/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-meal")
	r.HandleFunc("/meals/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-meal")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.add")
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

	var in MealInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("new meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	meal, err := handler.repo.Add(ctx, userID, in)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new meal for user %d: %s", userID, err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("meal.id", meal.ID))

	if handler.metricsManager != nil {
		handler.metricsManager.CounterMealsLogged.Inc()
	}

	pkg.WriteJSON(w, meal, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	meal, err := handler.repo.Get(ctx, id, userID)
	if errors.Is(err, ErrMealNotFound) {
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get meal %d: %s", id, err)
		http.Error(w, "failed to get meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, meal, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	from, err := pkg.ParseTimeQueryParam(query, "from")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := pkg.ParseTimeQueryParam(query, "to")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := pkg.ParseIntQueryParam(query, "limit", DefaultListLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meals, err := handler.repo.List(ctx, userID, ListParams{From: from, To: to, Limit: limit})
	if err != nil {
		log.Errorf("failed to list meals for user %d: %s", userID, err)
		http.Error(w, "failed to list meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{Meals: meals, Total: len(meals)}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var patch MealPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("update meal, unmarshal json params: %s", err)
		http.Error(w, "update meal failed", http.StatusBadRequest)
		return
	}

	meal, err := handler.repo.Update(ctx, id, userID, patch)
	switch {
	case errors.Is(err, ErrMealNotFound):
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	case pkg.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to update meal %d: %s", id, err)
		http.Error(w, "failed to update meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, meal, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.Delete(ctx, id, userID)
	if err != nil {
		log.Errorf("failed to delete meal %d: %s", id, err)
		http.Error(w, "failed to delete meal", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

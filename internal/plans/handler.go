package plans

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

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type plansRepo interface {
	Create(ctx context.Context, userID int, in PlanInput) (*Plan, error)
	Get(ctx context.Context, userID, planID int) (*Plan, error)
	GetActive(ctx context.Context, userID int) (*Plan, error)
	NextDay(ctx context.Context, userID int) (*PlanDay, error)
	Advance(ctx context.Context, userID, planID int) (bool, error)
	Update(ctx context.Context, userID, planID int, patch PlanPatch) (*Plan, error)
	Delete(ctx context.Context, userID, planID int) (bool, error)
	List(ctx context.Context, userID int) ([]Plan, error)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           plansRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo plansRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/active", handler.HandleGetActive).Methods("GET", "OPTIONS").Name("get-active-plan")
	r.HandleFunc("/plans/active/next", handler.HandleNextDay).Methods("GET", "OPTIONS").Name("get-next-plan-day")
	r.HandleFunc("/plans/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/plans/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/plans/{id}/advance", handler.HandleAdvance).Methods("POST", "OPTIONS").Name("advance-plan")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
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

	var in PlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("new plan, unmarshal json params: %s", err)
		http.Error(w, "add plan failed", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.Create(ctx, userID, in)
	if err != nil {
		if pkg.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new plan for user %d: %s", userID, err)
		http.Error(w, "error, failed to add new plan", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("plan.id", plan.ID))

	log.Debugf("new plan added: %d, %d days", plan.ID, len(plan.Days))
	pkg.WriteJSON(w, plan, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list plans for user %d: %s", userID, err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.Get(ctx, userID, planID)
	if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get plan %d: %s", planID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.getactive")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plan, err := handler.repo.GetActive(ctx, userID)
	if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "no active plan", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get active plan for user %d: %s", userID, err)
		http.Error(w, "failed to get active plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleNextDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.nextday")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day, err := handler.repo.NextDay(ctx, userID)
	switch {
	case errors.Is(err, ErrPlanNotFound):
		http.Error(w, "no active plan", http.StatusNotFound)
		return
	case errors.Is(err, ErrPlanHasNoDays):
		http.Error(w, "active plan has no days", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to get next plan day for user %d: %s", userID, err)
		http.Error(w, "failed to get next plan day", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, day, http.StatusOK)
}

func (handler *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.advance")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	advanced, err := handler.repo.Advance(ctx, userID, planID)
	if errors.Is(err, ErrPlanHasNoDays) {
		http.Error(w, "plan has no days", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to advance plan %d: %s", planID, err)
		http.Error(w, "failed to advance plan", http.StatusInternalServerError)
		return
	}
	if advanced && handler.metricsManager != nil {
		handler.metricsManager.CounterPlanAdvances.Inc()
	}

	plan, err := handler.repo.Get(ctx, userID, planID)
	if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get plan %d after advance: %s", planID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var patch PlanPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("update plan, unmarshal json params: %s", err)
		http.Error(w, "update plan failed", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.Update(ctx, userID, planID, patch)
	switch {
	case errors.Is(err, ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	case pkg.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to update plan %d: %s", planID, err)
		http.Error(w, "failed to update plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.Delete(ctx, userID, planID)
	if err != nil {
		log.Errorf("failed to delete plan %d: %s", planID, err)
		http.Error(w, "failed to delete plan", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: planID}, http.StatusOK)
}

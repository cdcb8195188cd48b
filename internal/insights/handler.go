package insights

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/iquadra-Harsh/wellness-wizard/internal/auth"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=insights_test

type insightsRepo interface {
	List(ctx context.Context, userID int, unreadOnly bool, limit int) ([]Insight, error)
	MarkRead(ctx context.Context, userID, id int) (bool, error)
	Delete(ctx context.Context, userID, id int) (bool, error)
}

type insightsGenerator interface {
	Generate(ctx context.Context, userID int) ([]Insight, error)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo    insightsRepo
	service insightsGenerator
}

func NewHandler(repo insightsRepo, service insightsGenerator) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/insights", handler.HandleList).Methods("GET", "OPTIONS").Name("list-insights")
	r.HandleFunc("/insights/generate", handler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-insights")
	r.HandleFunc("/insights/{id}/read", handler.HandleMarkRead).Methods("PUT", "OPTIONS").Name("mark-insight-read")
	r.HandleFunc("/insights/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-insight")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	unreadOnly := query.Get("unread") == "true"
	limit, err := pkg.ParseIntQueryParam(query, "limit", DefaultListLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	insights, err := handler.repo.List(ctx, userID, unreadOnly, limit)
	if err != nil {
		log.Errorf("failed to list insights for user %d: %s", userID, err)
		http.Error(w, "failed to list insights", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, insights, http.StatusOK)
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	insights, err := handler.service.Generate(ctx, userID)
	if errors.Is(err, ErrGeneratorDisabled) {
		http.Error(w, "insights generation is disabled", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		log.Errorf("failed to generate insights for user %d: %s", userID, err)
		http.Error(w, "failed to generate insights", http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, insights, http.StatusCreated)
}

func (handler *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.markread")
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

	updated, err := handler.repo.MarkRead(ctx, userID, id)
	if err != nil {
		log.Errorf("failed to mark insight %d read: %s", id, err)
		http.Error(w, "failed to mark insight read", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "insight not found", http.StatusNotFound)
		return
	}

	pkg.WriteTextResponseOK(w, "true")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.delete")
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

	deleted, err := handler.repo.Delete(ctx, userID, id)
	if err != nil {
		log.Errorf("failed to delete insight %d: %s", id, err)
		http.Error(w, "failed to delete insight", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "insight not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

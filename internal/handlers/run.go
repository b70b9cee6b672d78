package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trainlog-dev/trainlog/internal/models"
	"github.com/trainlog-dev/trainlog/internal/store"
	"github.com/trainlog-dev/trainlog/internal/types"
	"github.com/trainlog-dev/trainlog/internal/utils"
)

type RunHandler struct {
	Runs        *store.Runs
	Events      *store.Events
	Memberships *store.Memberships
}

type CreateRunRequest struct {
	EventID string    `json:"event_id" binding:"required"`
	UserID  string    `json:"user_id"`
	Date    time.Time `json:"date" binding:"required"`
	Status  string    `json:"status" binding:"required"`
}

type UpdateRunRequest struct {
	RunID  string    `json:"run_id" binding:"required"`
	Date   time.Time `json:"date" binding:"required"`
	Status string    `json:"status" binding:"required"`
}

// Create records a run under an event. Recording a run for another user
// requires ADMIN on the event's plan.
func (h *RunHandler) Create(ctx *gin.Context) {
	var req CreateRunRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if req.UserID == "" {
		req.UserID = currentUserID
	}

	event, err := h.Events.Get(req.EventID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to retrieve event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		return
	}

	requiredTier := models.TierParticipant

	if req.UserID != currentUserID {
		requiredTier = models.TierAdmin
	}

	if !requireTier(ctx, h.Memberships, currentUserID, event.PlanID, requiredTier) {
		return
	}

	run, err := h.Runs.Create(req.EventID, req.UserID, req.Date, req.Status)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event or user not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to create run: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create run"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewRunResponse(run))
}

func (h *RunHandler) Info(ctx *gin.Context) {
	run, ok := h.fetchRun(ctx)

	if !ok {
		return
	}

	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !h.authorize(ctx, currentUserID, run, models.TierParticipant) {
		return
	}

	ctx.JSON(http.StatusOK, types.NewRunResponse(run))
}

func (h *RunHandler) Modify(ctx *gin.Context) {
	var req UpdateRunRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	existing, err := h.Runs.Get(req.RunID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to retrieve run: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve run"})
		return
	}

	if !h.authorize(ctx, currentUserID, existing, models.TierAdmin) {
		return
	}

	run, err := h.Runs.Update(req.RunID, req.Date, req.Status)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to update run: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update run"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewRunResponse(run))
}

func (h *RunHandler) Delete(ctx *gin.Context) {
	run, ok := h.fetchRun(ctx)

	if !ok {
		return
	}

	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !h.authorize(ctx, currentUserID, run, models.TierAdmin) {
		return
	}

	if err := h.Runs.Delete(run.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
			return
		}
		log.Printf("Failed to delete run: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete run"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *RunHandler) fetchRun(ctx *gin.Context) (models.Run, bool) {
	runID := ctx.Query("run_id")

	if runID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "run_id is required"})
		return models.Run{}, false
	}

	run, err := h.Runs.Get(runID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return models.Run{}, false
	}

	if err != nil {
		log.Printf("Failed to retrieve run: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve run"})
		return models.Run{}, false
	}

	return run, true
}

// authorize allows the run's own user, or anyone holding the required tier
// on the run's plan.
func (h *RunHandler) authorize(ctx *gin.Context, userID string, run models.Run, required models.Tier) bool {
	if run.UserID != nil && *run.UserID == userID {
		return true
	}

	event, err := h.Events.Get(run.EventID)

	if err != nil {
		log.Printf("Failed to retrieve event for run: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return false
	}

	return requireTier(ctx, h.Memberships, userID, event.PlanID, required)
}

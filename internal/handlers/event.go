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

type EventHandler struct {
	Events      *store.Events
	Plans       *store.Plans
	Memberships *store.Memberships
}

type CreateEventRequest struct {
	PlanID   string    `json:"plan_id" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Distance float64   `json:"distance" binding:"required"`
	Unit     string    `json:"unit" binding:"required"`
}

type UpdateEventRequest struct {
	EventID  string    `json:"event_id" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Distance float64   `json:"distance" binding:"required"`
	Unit     string    `json:"unit" binding:"required"`
}

func (h *EventHandler) Create(ctx *gin.Context) {
	var req CreateEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := h.Plans.Get(req.PlanID); errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, req.PlanID, models.TierAdmin) {
		return
	}

	event, err := h.Events.Create(req.Name, req.Date, req.Distance, req.Unit, req.PlanID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to create event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewEventResponse(event))
}

func (h *EventHandler) Get(ctx *gin.Context) {
	event, ok := h.fetchEvent(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, event.PlanID, models.TierParticipant) {
		return
	}

	ctx.JSON(http.StatusOK, types.NewEventResponse(event))
}

func (h *EventHandler) Modify(ctx *gin.Context) {
	var req UpdateEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	existing, err := h.Events.Get(req.EventID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to retrieve event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, existing.PlanID, models.TierAdmin) {
		return
	}

	event, err := h.Events.Update(req.EventID, req.Name, req.Date, req.Distance, req.Unit)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to update event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewEventResponse(event))
}

// Runs lists every run recorded under an event. An event with no runs yields
// an empty list, not a 404.
func (h *EventHandler) Runs(ctx *gin.Context) {
	event, ok := h.fetchEvent(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, event.PlanID, models.TierParticipant) {
		return
	}

	runs, err := h.Events.ListRuns(event.ID)

	if err != nil {
		log.Printf("Failed to list runs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list runs"})
		return
	}

	response := make([]types.RunResponse, 0, len(runs))

	for _, run := range runs {
		response = append(response, types.NewRunResponse(run))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *EventHandler) Delete(ctx *gin.Context) {
	event, ok := h.fetchEvent(ctx)

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, event.PlanID, models.TierAdmin) {
		return
	}

	if err := h.Events.Delete(event.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("Failed to delete event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *EventHandler) fetchEvent(ctx *gin.Context) (models.Event, bool) {
	eventID := ctx.Query("event_id")

	if eventID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required"})
		return models.Event{}, false
	}

	event, err := h.Events.Get(eventID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return models.Event{}, false
	}

	if err != nil {
		log.Printf("Failed to retrieve event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		return models.Event{}, false
	}

	return event, true
}

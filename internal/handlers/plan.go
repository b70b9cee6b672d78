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

type PlanHandler struct {
	Plans       *store.Plans
	Memberships *store.Memberships
}

type CreatePlanRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Distance    float64   `json:"distance" binding:"required"`
	Unit        string    `json:"unit" binding:"required"`
}

type UpdatePlanRequest struct {
	PlanID      string    `json:"plan_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Distance    float64   `json:"distance" binding:"required"`
	Unit        string    `json:"unit" binding:"required"`
}

type AddUsersRequest struct {
	PlanID string      `json:"plan_id" binding:"required"`
	Users  []string    `json:"users" binding:"required,min=1"`
	Tier   models.Tier `json:"tier"`
}

type RemoveUserRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

// Create makes a new plan and enrolls the caller as its OWNER.
func (h *PlanHandler) Create(ctx *gin.Context) {
	var req CreatePlanRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	plan, err := h.Plans.Create(req.Name, req.Description, req.Date, req.Distance, req.Unit, userID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to create plan: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewPlanResponse(plan))
}

func (h *PlanHandler) Get(ctx *gin.Context) {
	planID := ctx.Query("plan_id")

	if planID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	plan, err := h.Plans.Get(planID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to retrieve plan: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plan"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, plan.ID, models.TierParticipant) {
		return
	}

	ctx.JSON(http.StatusOK, types.NewPlanResponse(plan))
}

func (h *PlanHandler) Modify(ctx *gin.Context) {
	var req UpdatePlanRequest

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

	plan, err := h.Plans.Update(req.PlanID, req.Name, req.Description, req.Date, req.Distance, req.Unit)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to update plan: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewPlanResponse(plan))
}

func (h *PlanHandler) Delete(ctx *gin.Context) {
	planID := ctx.Query("plan_id")

	if planID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := h.Plans.Get(planID); errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, planID, models.TierOwner) {
		return
	}

	if err := h.Plans.Delete(planID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		log.Printf("Failed to delete plan: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddUsers enrolls a batch of users in a plan. The tier defaults to
// PARTICIPANT; OWNER cannot be granted after creation.
func (h *PlanHandler) AddUsers(ctx *gin.Context) {
	var req AddUsersRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Tier == "" {
		req.Tier = models.TierParticipant
	}

	if !req.Tier.Valid() || req.Tier == models.TierOwner {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Tier must be ADMIN or PARTICIPANT"})
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

	for _, memberID := range req.Users {
		_, err := h.Memberships.Add(memberID, req.PlanID, req.Tier)

		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "One or more users not found"})
			return
		}

		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "User is already a member of this plan"})
			return
		}

		if err != nil {
			log.Printf("Failed to add user to plan: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add users to plan"})
			return
		}
	}

	h.respondMembers(ctx, req.PlanID)
}

func (h *PlanHandler) RemoveUser(ctx *gin.Context) {
	var req RemoveUserRequest

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

	tier, err := h.Memberships.GetTier(req.UserID, req.PlanID)

	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
		return
	}

	if err != nil {
		log.Printf("Failed to check membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if tier == models.TierOwner {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Cannot remove the plan owner"})
		return
	}

	if err := h.Memberships.Remove(req.UserID, req.PlanID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
			return
		}
		log.Printf("Failed to remove user from plan: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *PlanHandler) Members(ctx *gin.Context) {
	planID := ctx.Query("plan_id")

	if planID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := h.Plans.Get(planID); errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if !requireTier(ctx, h.Memberships, userID, planID, models.TierParticipant) {
		return
	}

	h.respondMembers(ctx, planID)
}

func (h *PlanHandler) respondMembers(ctx *gin.Context, planID string) {
	members, err := h.Memberships.ListMembers(planID)

	if err != nil {
		log.Printf("Failed to list plan members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.MemberResponse, 0, len(members))

	for _, member := range members {
		response = append(response, types.MemberResponse{
			User: types.NewUserResponse(member.User),
			Tier: member.Tier,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

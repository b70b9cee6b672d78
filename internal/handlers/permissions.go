package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trainlog-dev/trainlog/internal/models"
	"github.com/trainlog-dev/trainlog/internal/store"
)

// requireTier aborts the request with 403 (or 500) unless the user holds at
// least the required tier on the plan. Plan existence is the caller's
// responsibility; a missing membership is reported as forbidden, not as an
// error.
func requireTier(ctx *gin.Context, memberships *store.Memberships, userID, planID string, required models.Tier) bool {
	ok, err := memberships.HasAtLeast(userID, planID, required)

	if err != nil {
		log.Printf("Failed to check plan permissions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return false
	}

	if !ok {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Insufficient plan permissions"})
		return false
	}

	return true
}

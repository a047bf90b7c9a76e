package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/service"
	"github.com/ascend-community/backend/internal/types"
)

// PlanHandler exposes the nutrition plan engine over HTTP.
type PlanHandler struct {
	plans service.IPlanService
}

// NewPlanHandler creates a new PlanHandler instance
func NewPlanHandler(plans service.IPlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// currentUserID extracts the authenticated user from the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}

// ListTemplates returns the plan templates available to members.
func (h *PlanHandler) ListTemplates(c *gin.Context) {
	templates, err := h.plans.ListTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": templates})
}

// GetPlan returns the member's (possibly customized) view of a plan.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	plan, err := h.plans.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// EditMeal replaces one meal's ingredient list and returns the refreshed
// aggregate. The snapshot is persisted asynchronously.
func (h *PlanHandler) EditMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	var req types.EditMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day := model.Weekday(c.Param("day"))
	slot := model.MealSlot(c.Param("slot"))
	plan, err := h.plans.EditMeal(c.Request.Context(), userID, planID, day, slot, req.Ingredients)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMealCell):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit meal"})
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ResetPlan discards all customization and returns the base plan.
func (h *PlanHandler) ResetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	plan, err := h.plans.ResetToBase(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SelectPlan persists the current snapshot and marks the plan active.
func (h *PlanHandler) SelectPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	if err := h.plans.SelectActivePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan_id": planID, "active": true})
}

// GetActivePlan returns the pointer to the member's active plan.
func (h *PlanHandler) GetActivePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	planID, err := h.plans.ActivePlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load active plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan_id": planID})
}

// GetDayDeviations classifies one day's totals against the member's targets.
func (h *PlanHandler) GetDayDeviations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	dev, err := h.plans.DayDeviations(c.Request.Context(), userID, planID, model.Weekday(c.Param("day")))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMealCell):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate deviations"})
		}
		return
	}
	c.JSON(http.StatusOK, dev)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascend-community/backend/internal/service"
)

// IngredientHandler exposes the read-only ingredient fact table.
type IngredientHandler struct {
	ingredients service.IIngredientService
}

// NewIngredientHandler creates a new IngredientHandler instance
func NewIngredientHandler(ingredients service.IIngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// ListIngredients returns the full fact table.
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	facts, err := h.ingredients.ListFacts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": facts})
}

// GetIngredient returns a single fact by name.
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	fact, err := h.ingredients.GetFact(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, fact)
}

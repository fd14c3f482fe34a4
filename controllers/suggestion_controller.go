// controllers/suggestion_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	Svc *services.SuggestionService
}

func NewSuggestionController(svc *services.SuggestionService) *SuggestionController {
	return &SuggestionController{Svc: svc}
}

// GET /diets/:id/suggestions?day=monday
func (h *SuggestionController) ForDietDay(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	day := c.DefaultQuery("day", "monday")

	tips, err := h.Svc.ForDietDay(userID, id, day)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "suggestions": tips})
}

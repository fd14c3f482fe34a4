// controllers/share_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ShareController struct {
	Svc *services.DietService
}

func NewShareController(svc *services.DietService) *ShareController {
	return &ShareController{Svc: svc}
}

// GET /share/:shareId — public, no auth. Returns the read-only plan view a
// client sees when their nutritionist sends them the link.
func (h *ShareController) View(c *gin.Context) {
	shareID := c.Param("shareId")
	if shareID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing share id"})
		return
	}

	diet, err := h.Svc.GetByShareID(c.Request.Context(), shareID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":        diet.Name,
		"client_name": diet.ClientName,
		"supplements": diet.Supplements,
		"summary":     services.BuildDietSummary(diet),
	})
}

package controllers

import (
	"fmt"
	"net/http"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PhotoUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /clients/:id/photo — uploads the portrait and stores the served URL
// on the client row.
func UploadClientPhoto(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var client models.Client
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	url, err := utils.UploadClientPhoto(req.ImageBase64, fmt.Sprintf("u%d-%d", uid, id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	if err := config.DB.Model(&client).Update("photo", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

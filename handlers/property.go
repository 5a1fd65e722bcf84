package handlers

import (
	"net/http"

	"estia/models"
	"estia/services/property"
	"estia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler exposes listing CRUD and photo endpoints.
type PropertyHandler struct {
	Service property.PropertyService
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{Service: svc}
}

// CreatePropertyHandler handles POST /properties.
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload models.Property
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.AgentID = c.GetString("agentID")

	created, err := h.Service.CreateProperty(payload)
	if err != nil {
		logger.Warn("Property creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPropertiesHandler handles GET /properties.
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	agentID := c.GetString("agentID")
	properties, err := h.Service.GetPropertiesByAgent(agentID)
	if err != nil {
		logger.Error("Property list failed", zap.String("agentID", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GetPropertyHandler handles GET /properties/:id.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	p, err := h.Service.GetPropertyByID(id)
	if err != nil {
		logger.Error("Property not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if p.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Property belongs to another agent"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePropertyHandler handles PUT /properties/:id.
func (h *PropertyHandler) UpdatePropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetPropertyByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Property belongs to another agent"})
		return
	}

	var payload models.Property
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	payload.ID = id

	updated, err := h.Service.UpdateProperty(payload)
	if err != nil {
		logger.Error("Property update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePropertyHandler handles DELETE /properties/:id.
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetPropertyByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Property belongs to another agent"})
		return
	}

	if err := h.Service.DeleteProperty(id); err != nil {
		logger.Error("Property delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// UploadPhotoHandler handles POST /properties/:id/photos with a multipart
// "photo" file field.
func (h *PropertyHandler) UploadPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetPropertyByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Property belongs to another agent"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read photo file"})
		return
	}
	defer file.Close()

	photo, err := h.Service.AddPhoto(c.Request.Context(), id, file)
	if err != nil {
		logger.Error("Photo upload failed", zap.String("propertyID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// DeletePhotoHandler handles DELETE /properties/:id/photos/:photoId.
func (h *PropertyHandler) DeletePhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	existing, err := h.Service.GetPropertyByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.AgentID != c.GetString("agentID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Property belongs to another agent"})
		return
	}

	photoID := c.Param("photoId")
	if err := h.Service.RemovePhoto(c.Request.Context(), id, photoID); err != nil {
		logger.Error("Photo delete failed",
			zap.String("propertyID", id), zap.String("photoID", photoID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}

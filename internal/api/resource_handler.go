package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the shared client resources.
type ResourceHandler struct {
	resourceService service.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

type CreateResourceRequest struct {
	Title       string              `json:"title" binding:"required"`
	Type        domain.ResourceType `json:"type" binding:"required,oneof=link file"`
	URL         string              `json:"url" binding:"omitempty,url"`
	ObjectKey   string              `json:"objectKey"`
	Description string              `json:"description"`
}

type UploadURLRequest struct {
	ClientID    string `json:"clientId" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type UploadURLResponse struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
}

func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	resource, err := h.resourceService.Add(c.Request.Context(), &domain.ClientResource{
		ClientID:    c.Param("id"),
		Title:       req.Title,
		Type:        req.Type,
		URL:         req.URL,
		ObjectKey:   req.ObjectKey,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			abortWithError(c, http.StatusBadRequest, "Client not found")
		case errors.Is(err, service.ErrInvalidResource):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add resource")
		}
		return
	}
	c.JSON(http.StatusCreated, resource)
}

func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.resourceService.ListForClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch resources")
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	if err := h.resourceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			abortWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete resource")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateUploadURL returns a presigned PUT URL for uploading a file
// resource directly to object storage.
func (h *ResourceHandler) GenerateUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	objectKey, uploadURL, err := h.resourceService.GenerateUploadURL(c.Request.Context(), req.ClientID, req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResource) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}
	c.JSON(http.StatusOK, UploadURLResponse{ObjectKey: objectKey, UploadURL: uploadURL})
}

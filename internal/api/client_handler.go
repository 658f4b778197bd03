package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"
	"fitpro/trainer-app/internal/store"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service dependency.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest mirrors the client intake form. The portal key is
// not accepted here; the server generates it.
type CreateClientRequest struct {
	Name         string              `json:"name" binding:"required"`
	Email        string              `json:"email" binding:"required,email"`
	Phone        string              `json:"phone" binding:"required,min=10"`
	Age          int                 `json:"age" binding:"required,min=10,max=100"`
	Weight       float64             `json:"weight" binding:"required,min=20,max=300"`
	Height       float64             `json:"height" binding:"required,min=100,max=250"`
	Goal         domain.Goal         `json:"goal" binding:"required,oneof=weight_loss muscle_gain maintenance endurance flexibility"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel" binding:"required,oneof=beginner intermediate advanced"`
	Notes        string              `json:"notes"`
}

// UpdateClientRequest is the partial variant; absent fields stay untouched.
type UpdateClientRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1"`
	Email        *string              `json:"email" binding:"omitempty,email"`
	Phone        *string              `json:"phone" binding:"omitempty,min=10"`
	Age          *int                 `json:"age" binding:"omitempty,min=10,max=100"`
	Weight       *float64             `json:"weight" binding:"omitempty,min=20,max=300"`
	Height       *float64             `json:"height" binding:"omitempty,min=100,max=250"`
	Goal         *domain.Goal         `json:"goal" binding:"omitempty,oneof=weight_loss muscle_gain maintenance endurance flexibility"`
	FitnessLevel *domain.FitnessLevel `json:"fitnessLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	Notes        *string              `json:"notes"`
}

// ListClients returns every client.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient returns a single client by id.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch client")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient stores a new client and returns it with the generated id
// and portal key.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), &domain.Client{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Weight:       req.Weight,
		Height:       req.Height,
		Goal:         req.Goal,
		FitnessLevel: req.FitnessLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient applies a partial update.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), c.Param("id"), store.ClientUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Weight:       req.Weight,
		Height:       req.Height,
		Goal:         req.Goal,
		FitnessLevel: req.FitnessLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update client")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes the client and everything it owns.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clientService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, "Client not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete client")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

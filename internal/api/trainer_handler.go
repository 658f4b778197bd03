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

// TrainerHandler serves the trainer contact profile and share links. The
// profile is a single record, so the handler talks to the store directly.
type TrainerHandler struct {
	profileStore store.ProfileStore
	shareService service.ShareService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(profileStore store.ProfileStore, shareService service.ShareService) *TrainerHandler {
	return &TrainerHandler{profileStore: profileStore, shareService: shareService}
}

type SaveProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

type WhatsAppShareRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type WhatsAppShareResponse struct {
	URL string `json:"url"`
}

func (h *TrainerHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileStore.GetProfile(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *TrainerHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile := &domain.TrainerProfile{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Bio:   req.Bio,
	}
	if err := h.profileStore.SetProfile(c.Request.Context(), profile); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ShareWhatsApp returns a wa.me deep link for the given message and phone.
func (h *TrainerHandler) ShareWhatsApp(c *gin.Context) {
	var req WhatsAppShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	link, err := h.shareService.WhatsAppLink(req.Message, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to build share link")
		}
		return
	}
	c.JSON(http.StatusOK, WhatsAppShareResponse{URL: link})
}

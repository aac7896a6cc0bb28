package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow-api/internal/response"
	"taskflow-api/internal/service"
)

type SeedHandler struct {
	seedService service.SeedService
	logger      *zap.Logger
}

func NewSeedHandler(seedService service.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{seedService: seedService, logger: logger}
}

// SeedDemoData godoc
// @Summary      Populate the caller's account with demo content
// @Description  Does nothing when the caller already owns a workspace
// @Tags         seed
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.MessageResponse
// @Router       /seed-demo-data [post]
func (h *SeedHandler) SeedDemoData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	message, err := h.seedService.SeedDemoData(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, message)
}

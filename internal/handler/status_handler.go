package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/response"
	"taskflow-api/internal/service"
)

type StatusHandler struct {
	statusService service.StatusService
	logger        *zap.Logger
}

func NewStatusHandler(statusService service.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{statusService: statusService, logger: logger}
}

// ListStatuses godoc
// @Summary      Status columns of a board, by order
// @Tags         statuses
// @Produce      json
// @Security     BearerAuth
// @Param        board_id query string true "Board ID (UUID)"
// @Success      200 {array} dto.StatusResponse
// @Router       /statuses [get]
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := queryID(c, "board_id")
	if !ok {
		return
	}

	statuses, err := h.statusService.ListStatuses(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, statuses)
}

func (h *StatusHandler) CreateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statusService.CreateStatus(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, status)
}

func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	statusID, ok := pathID(c, "Status")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statusService.UpdateStatus(c.Request.Context(), userID, statusID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, status)
}

func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	statusID, ok := pathID(c, "Status")
	if !ok {
		return
	}

	if err := h.statusService.DeleteStatus(c.Request.Context(), userID, statusID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Status deleted")
}

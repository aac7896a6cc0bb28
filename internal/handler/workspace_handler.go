package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/response"
	"taskflow-api/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
	logger           *zap.Logger
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService, logger *zap.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService, logger: logger}
}

// ListWorkspaces godoc
// @Summary      Workspaces owned by the caller
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.WorkspaceResponse
// @Router       /workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListWorkspaces(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workspaces)
}

// CreateWorkspace godoc
// @Summary      Create a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateWorkspaceRequest true "Workspace"
// @Success      200 {object} dto.WorkspaceResponse
// @Router       /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	ws, err := h.workspaceService.CreateWorkspace(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, ws)
}

// UpdateWorkspace godoc
// @Summary      Partially update a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workspace ID (UUID)"
// @Param        request body dto.UpdateWorkspaceRequest true "Fields to change"
// @Success      200 {object} dto.WorkspaceResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /workspaces/{id} [put]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := pathID(c, "Workspace")
	if !ok {
		return
	}
	var req dto.UpdateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	ws, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), userID, workspaceID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, ws)
}

// DeleteWorkspace godoc
// @Summary      Delete a workspace and its boards
// @Tags         workspaces
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workspace ID (UUID)"
// @Success      200 {object} response.MessageResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /workspaces/{id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := pathID(c, "Workspace")
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), userID, workspaceID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Workspace deleted")
}

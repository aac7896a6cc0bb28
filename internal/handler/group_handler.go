package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/response"
	"taskflow-api/internal/service"
)

type GroupHandler struct {
	groupService service.GroupService
	logger       *zap.Logger
}

func NewGroupHandler(groupService service.GroupService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{groupService: groupService, logger: logger}
}

// ListGroups godoc
// @Summary      Groups of a board, by order
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        board_id query string true "Board ID (UUID)"
// @Success      200 {array} dto.GroupResponse
// @Router       /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := queryID(c, "board_id")
	if !ok {
		return
	}

	groups, err := h.groupService.ListGroups(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, groups)
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, group)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "Group")
	if !ok {
		return
	}
	var req dto.UpdateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), userID, groupID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "Group")
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), userID, groupID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Group deleted")
}

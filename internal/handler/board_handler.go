package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/response"
	"taskflow-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{boardService: boardService, logger: logger}
}

// ListBoards godoc
// @Summary      Boards in the caller's workspaces
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id query string false "Workspace ID (UUID)"
// @Success      200 {array} dto.BoardResponse
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var workspaceID *uuid.UUID
	if raw := c.Query("workspace_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid workspace_id")
			return
		}
		workspaceID = &id
	}

	boards, err := h.boardService.ListBoards(c.Request.Context(), userID, workspaceID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// CreateBoard godoc
// @Summary      Create a board with the default statuses
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoardRequest true "Board"
// @Success      200 {object} dto.BoardResponse
// @Failure      404 {object} response.ErrorResponse "Workspace not found"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "Board")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "Board")
	if !ok {
		return
	}
	var req dto.UpdateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board with its groups, statuses and tasks
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID (UUID)"
// @Success      200 {object} response.MessageResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathID(c, "Board")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "Board deleted")
}

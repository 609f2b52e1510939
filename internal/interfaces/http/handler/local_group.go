package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/interfaces/http/middleware"
)

// LocalGroupHandler handles local group HTTP requests
type LocalGroupHandler struct {
	BaseHandler
	directoryService *membership.DirectoryService
}

// NewLocalGroupHandler creates a new local group handler
func NewLocalGroupHandler(directoryService *membership.DirectoryService) *LocalGroupHandler {
	return &LocalGroupHandler{directoryService: directoryService}
}

// CreateLocalGroupRequest represents the request body for creating a local group
type CreateLocalGroupRequest struct {
	GroupName   string `json:"group_name" binding:"required"`
	GroupNumber int    `json:"group_number" binding:"required"`
}

// ListLocalGroups godoc
// @Summary      List local groups
// @Tags         local-groups
// @Produce      json
// @Success      200 {object} dto.Response{data=[]LocalGroupResponse}
// @Router       /local-groups [get]
func (h *LocalGroupHandler) ListLocalGroups(c *gin.Context) {
	groups, err := h.directoryService.ListLocalGroups(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]LocalGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, *toLocalGroupResponse(g))
	}
	h.Success(c, out)
}

// CreateLocalGroup godoc
// @Summary      Create a local group
// @Description  Admin only. Group numbers are unique three-digit identifiers.
// @Tags         local-groups
// @Accept       json
// @Produce      json
// @Param        request body CreateLocalGroupRequest true "Local group"
// @Success      201 {object} dto.Response{data=LocalGroupResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /local-groups [post]
func (h *LocalGroupHandler) CreateLocalGroup(c *gin.Context) {
	var req CreateLocalGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	group, err := h.directoryService.CreateLocalGroup(c.Request.Context(), membership.CreateLocalGroupInput{
		GroupName:   req.GroupName,
		GroupNumber: req.GroupNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toLocalGroupResponse(group))
}

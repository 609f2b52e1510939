package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/interfaces/http/dto"
)

// AdminActionHandler exposes the privileged-change audit trail
type AdminActionHandler struct {
	BaseHandler
	directoryService *membership.DirectoryService
}

// NewAdminActionHandler creates a new admin action handler
func NewAdminActionHandler(directoryService *membership.DirectoryService) *AdminActionHandler {
	return &AdminActionHandler{directoryService: directoryService}
}

// AdminActionResponse represents an audit record in responses
type AdminActionResponse struct {
	ID           uuid.UUID `json:"id"`
	AdminID      uuid.UUID `json:"admin_id"`
	AdminName    string    `json:"admin_name,omitempty"`
	TargetUserID uuid.UUID `json:"target_user_id"`
	TargetName   string    `json:"target_name,omitempty"`
	Action       string    `json:"action"`
	CreatedAt    time.Time `json:"created_at"`
}

// List godoc
// @Summary      List admin actions
// @Description  Audit trail of privileged account changes, newest first. Admin only.
// @Tags         admin-actions
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]AdminActionResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin-actions [get]
func (h *AdminActionHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Normalize()

	actions, total, err := h.directoryService.ListAdminActions(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]AdminActionResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, toAdminActionResponse(a))
	}

	h.SuccessWithMeta(c, out, total, req.Page, req.PageSize)
}

func toAdminActionResponse(action *directory.AdminAction) AdminActionResponse {
	resp := AdminActionResponse{
		ID:           action.ID,
		AdminID:      action.AdminID,
		TargetUserID: action.TargetUserID,
		Action:       action.Action,
		CreatedAt:    action.CreatedAt,
	}
	if action.Admin != nil {
		resp.AdminName = action.Admin.DisplayName()
	}
	if action.TargetUser != nil {
		resp.TargetName = action.TargetUser.DisplayName()
	}
	return resp
}

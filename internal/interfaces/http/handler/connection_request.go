package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/interfaces/http/dto"
	"github.com/memberconnect/backend/internal/interfaces/http/middleware"
)

// ConnectionRequestHandler handles seeker-to-expert connection requests
type ConnectionRequestHandler struct {
	BaseHandler
	connectService   *membership.ConnectService
	directoryService *membership.DirectoryService
}

// NewConnectionRequestHandler creates a new connection request handler
func NewConnectionRequestHandler(
	connectService *membership.ConnectService,
	directoryService *membership.DirectoryService,
) *ConnectionRequestHandler {
	return &ConnectionRequestHandler{
		connectService:   connectService,
		directoryService: directoryService,
	}
}

// CreateConnectionRequestRequest represents the request body for contacting an expert
type CreateConnectionRequestRequest struct {
	ExpertID               string `json:"expert_id" binding:"required,uuid"`
	Message                string `json:"message"`
	PreferredContactMethod string `json:"preferred_contact_method"`
}

// ConnectionPartyResponse is the compact user reference embedded in
// connection request responses
type ConnectionPartyResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// ConnectionRequestResponse represents a connection request in responses
type ConnectionRequestResponse struct {
	ID                     uuid.UUID                `json:"id"`
	Seeker                 *ConnectionPartyResponse `json:"seeker,omitempty"`
	Expert                 *ConnectionPartyResponse `json:"expert,omitempty"`
	Message                string                   `json:"message"`
	PreferredContactMethod string                   `json:"preferred_contact_method"`
	ContactMethodLabel     string                   `json:"contact_method_label"`
	CreatedAt              time.Time                `json:"created_at"`
}

// Create godoc
// @Summary      Contact an expert
// @Description  Record a connection request and notify the expert by email
// @Tags         connection-requests
// @Accept       json
// @Produce      json
// @Param        request body CreateConnectionRequestRequest true "Connection request"
// @Success      201 {object} dto.Response{data=ConnectionRequestResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /connection-requests [post]
func (h *ConnectionRequestHandler) Create(c *gin.Context) {
	seekerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateConnectionRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	expertID, err := uuid.Parse(req.ExpertID)
	if err != nil {
		h.BadRequest(c, "Invalid expert ID")
		return
	}

	request, err := h.connectService.Create(c.Request.Context(), membership.ConnectInput{
		SeekerID:               seekerID,
		ExpertID:               expertID,
		Message:                req.Message,
		PreferredContactMethod: req.PreferredContactMethod,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toConnectionRequestResponse(request))
}

// List godoc
// @Summary      List connection requests
// @Description  Admins see every request, members only their own
// @Tags         connection-requests
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]ConnectionRequestResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /connection-requests [get]
func (h *ConnectionRequestHandler) List(c *gin.Context) {
	viewerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	viewer, err := h.directoryService.GetUser(c.Request.Context(), viewerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Normalize()

	requests, total, err := h.connectService.List(c.Request.Context(), viewer, req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ConnectionRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toConnectionRequestResponse(r))
	}

	h.SuccessWithMeta(c, out, total, req.Page, req.PageSize)
}

func toConnectionPartyResponse(user *directory.User) *ConnectionPartyResponse {
	if user == nil {
		return nil
	}
	return &ConnectionPartyResponse{
		ID:    user.ID,
		Name:  user.DisplayName(),
		Email: user.Email,
	}
}

func toConnectionRequestResponse(request *directory.ConnectionRequest) ConnectionRequestResponse {
	return ConnectionRequestResponse{
		ID:                     request.ID,
		Seeker:                 toConnectionPartyResponse(request.Seeker),
		Expert:                 toConnectionPartyResponse(request.Expert),
		Message:                request.Message,
		PreferredContactMethod: string(request.PreferredContactMethod),
		ContactMethodLabel:     request.PreferredContactMethod.Label(),
		CreatedAt:              request.CreatedAt,
	}
}

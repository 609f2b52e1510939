package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/domain/directory"
)

// UserHandler handles member account HTTP requests
type UserHandler struct {
	BaseHandler
	registrationService *membership.RegistrationService
	accountService      *membership.AccountService
	directoryService    *membership.DirectoryService
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registrationService *membership.RegistrationService,
	accountService *membership.AccountService,
	directoryService *membership.DirectoryService,
) *UserHandler {
	return &UserHandler{
		registrationService: registrationService,
		accountService:      accountService,
		directoryService:    directoryService,
	}
}

// RegisterResponse represents the response body for successful registration
type RegisterResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// Register godoc
// @Summary      Register a new member
// @Description  Create a pending member account and sign it in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration form"
// @Success      201 {object} dto.Response{data=RegisterResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.registrationService.Register(c.Request.Context(), membership.RegisterInput{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Password:   req.Password,
		MemberID:   req.MemberID,
		Phone:      req.Phone,
		City:       req.City,
		State:      req.State,
		LocalGroup: req.LocalGroup,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, RegisterResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		User: toUserResponse(result.User, true),
	})
}

// ListUsers godoc
// @Summary      List members
// @Description  List member accounts with optional keyword and status filters. Admin only.
// @Tags         users
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Keyword matched against name, email, occupation"
// @Param        status query string false "Account status filter"
// @Param        sort_by query string false "Sort column"
// @Param        sort_order query string false "asc or desc"
// @Success      200 {object} dto.Response{data=[]UserResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Normalize()

	filter := directory.UserFilter{
		Keyword:   req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if req.Status != "" {
		status := directory.UserStatus(req.Status)
		filter.Status = &status
	}

	users, total, err := h.directoryService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toUserResponses(users, true), total, req.Page, req.PageSize)
}

// GetUser godoc
// @Summary      Get a member account
// @Description  Account detail, visible to the member themselves and admins
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	targetID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if !h.canAccessAccount(c, targetID) {
		h.Forbidden(c, "You can only view your own account")
		return
	}

	user, err := h.directoryService.GetUser(c.Request.Context(), targetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(user, true))
}

// UpdateUser godoc
// @Summary      Update a member account
// @Description  Partial update; validation problems are aggregated and nothing is written on failure. Status and role changes are admin only and audited.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	targetID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if !h.canAccessAccount(c, targetID) {
		h.Forbidden(c, "You can only update your own account")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	// Privileged fields stay admin-only even on your own account
	if (req.Status != nil || req.Role != nil) && !isAdmin(c) {
		h.Forbidden(c, "Only admins can change status or role")
		return
	}

	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input := membership.UpdateAccountInput{
		ActorID:            actorID,
		TargetID:           targetID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Occupation:         req.Occupation,
		Background:         req.Background,
		AvailabilityStatus: req.AvailabilityStatus,
		ShowContactInfo:    req.ShowContactInfo,
		LocalGroup:         req.LocalGroup,
		Status:             req.Status,
		Role:               req.Role,
	}

	if req.IndustryID != nil {
		industryID, err := uuid.Parse(*req.IndustryID)
		if err != nil {
			h.BadRequest(c, "Invalid industry ID")
			return
		}
		input.IndustryID = &industryID
	}

	user, err := h.accountService.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(user, true))
}

// UploadPhoto godoc
// @Summary      Upload a profile photo
// @Description  Replace the member's profile photo with the raw request body. Size is capped by the server.
// @Tags         users
// @Accept       octet-stream
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id}/photo [put]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	targetID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if !h.canAccessAccount(c, targetID) {
		h.Forbidden(c, "You can only update your own photo")
		return
	}

	photo, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Failed to read photo data")
		return
	}
	if len(photo) == 0 {
		h.BadRequest(c, "Photo data is empty")
		return
	}

	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.accountService.Update(c.Request.Context(), membership.UpdateAccountInput{
		ActorID:      actorID,
		TargetID:     targetID,
		ProfilePhoto: photo,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(user, true))
}

// ListExperts godoc
// @Summary      List experts
// @Description  Active members offering at least one expertise. Contact details appear only when the member opted in.
// @Tags         experts
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Keyword matched against name, email, occupation"
// @Success      200 {object} dto.Response{data=[]UserResponse}
// @Router       /experts [get]
func (h *UserHandler) ListExperts(c *gin.Context) {
	var req UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Normalize()

	experts, total, err := h.directoryService.ListExperts(c.Request.Context(), directory.UserFilter{
		Keyword:   req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(experts))
	for _, expert := range experts {
		responses = append(responses, toUserResponse(expert, expert.ShowContactInfo))
	}

	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// GetExpert godoc
// @Summary      Get an expert profile
// @Description  Public expert profile; members without expertise records are not reachable here
// @Tags         experts
// @Produce      json
// @Param        id path string true "Expert user ID"
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /experts/{id} [get]
func (h *UserHandler) GetExpert(c *gin.Context) {
	expertID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expert ID")
		return
	}

	expert, err := h.directoryService.GetExpert(c.Request.Context(), expertID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(expert, expert.ShowContactInfo))
}

// canAccessAccount allows the account owner and admins through
func (h *UserHandler) canAccessAccount(c *gin.Context, targetID uuid.UUID) bool {
	if isAdmin(c) {
		return true
	}
	actorID, err := getUserID(c)
	if err != nil {
		return false
	}
	return actorID == targetID
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/interfaces/http/middleware"
)

// ExpertiseHandler handles expertise record HTTP requests
type ExpertiseHandler struct {
	BaseHandler
	directoryService *membership.DirectoryService
}

// NewExpertiseHandler creates a new expertise handler
func NewExpertiseHandler(directoryService *membership.DirectoryService) *ExpertiseHandler {
	return &ExpertiseHandler{directoryService: directoryService}
}

// CreateExpertiseRequest represents the request body for creating an expertise
type CreateExpertiseRequest struct {
	WhatOffering     string `json:"what_offering" binding:"required"`
	WhoWouldBenefit  string `json:"who_would_benefit"`
	WhyChooseYou     string `json:"why_choose_you"`
	SkillsNotOffered string `json:"skills_not_offered"`
}

// UpdateExpertiseRequest is a partial expertise update
type UpdateExpertiseRequest struct {
	WhatOffering     *string `json:"what_offering"`
	WhoWouldBenefit  *string `json:"who_would_benefit"`
	WhyChooseYou     *string `json:"why_choose_you"`
	SkillsNotOffered *string `json:"skills_not_offered"`
}

// ListExpertises godoc
// @Summary      List own expertise records
// @Tags         expertises
// @Produce      json
// @Success      200 {object} dto.Response{data=[]ExpertiseResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expertises [get]
func (h *ExpertiseHandler) ListExpertises(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expertises, err := h.directoryService.ListExpertises(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toExpertiseResponses(expertises))
}

// CreateExpertise godoc
// @Summary      Publish an expertise record
// @Description  A member holding at least one expertise record is listed as an expert
// @Tags         expertises
// @Accept       json
// @Produce      json
// @Param        request body CreateExpertiseRequest true "Expertise"
// @Success      201 {object} dto.Response{data=ExpertiseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expertises [post]
func (h *ExpertiseHandler) CreateExpertise(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateExpertiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	expertise, err := h.directoryService.CreateExpertise(c.Request.Context(), membership.CreateExpertiseInput{
		UserID:           userID,
		WhatOffering:     req.WhatOffering,
		WhoWouldBenefit:  req.WhoWouldBenefit,
		WhyChooseYou:     req.WhyChooseYou,
		SkillsNotOffered: req.SkillsNotOffered,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toExpertiseResponse(expertise))
}

// UpdateExpertise godoc
// @Summary      Update an expertise record
// @Description  Owner only
// @Tags         expertises
// @Accept       json
// @Produce      json
// @Param        id path string true "Expertise ID"
// @Param        request body UpdateExpertiseRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=ExpertiseResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expertises/{id} [patch]
func (h *ExpertiseHandler) UpdateExpertise(c *gin.Context) {
	expertiseID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expertise ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateExpertiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	expertise, err := h.directoryService.UpdateExpertise(c.Request.Context(), membership.UpdateExpertiseInput{
		ExpertiseID:      expertiseID,
		OwnerID:          userID,
		WhatOffering:     req.WhatOffering,
		WhoWouldBenefit:  req.WhoWouldBenefit,
		WhyChooseYou:     req.WhyChooseYou,
		SkillsNotOffered: req.SkillsNotOffered,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toExpertiseResponse(expertise))
}

// DeleteExpertise godoc
// @Summary      Delete an expertise record
// @Description  Owner only
// @Tags         expertises
// @Produce      json
// @Param        id path string true "Expertise ID"
// @Success      204
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /expertises/{id} [delete]
func (h *ExpertiseHandler) DeleteExpertise(c *gin.Context) {
	expertiseID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid expertise ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.directoryService.DeleteExpertise(c.Request.Context(), expertiseID, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func toExpertiseResponses(expertises []*directory.Expertise) []ExpertiseResponse {
	out := make([]ExpertiseResponse, 0, len(expertises))
	for _, e := range expertises {
		out = append(out, toExpertiseResponse(e))
	}
	return out
}

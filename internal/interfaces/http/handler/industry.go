package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/interfaces/http/middleware"
)

// IndustryHandler handles industry reference data HTTP requests
type IndustryHandler struct {
	BaseHandler
	directoryService *membership.DirectoryService
}

// NewIndustryHandler creates a new industry handler
func NewIndustryHandler(directoryService *membership.DirectoryService) *IndustryHandler {
	return &IndustryHandler{directoryService: directoryService}
}

// CreateIndustryRequest represents the request body for creating an industry
type CreateIndustryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListIndustries godoc
// @Summary      List industries
// @Tags         industries
// @Produce      json
// @Success      200 {object} dto.Response{data=[]IndustryResponse}
// @Router       /industries [get]
func (h *IndustryHandler) ListIndustries(c *gin.Context) {
	industries, err := h.directoryService.ListIndustries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]IndustryResponse, 0, len(industries))
	for _, i := range industries {
		out = append(out, *toIndustryResponse(i))
	}
	h.Success(c, out)
}

// CreateIndustry godoc
// @Summary      Create an industry
// @Description  Admin only
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        request body CreateIndustryRequest true "Industry"
// @Success      201 {object} dto.Response{data=IndustryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /industries [post]
func (h *IndustryHandler) CreateIndustry(c *gin.Context) {
	var req CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	industry, err := h.directoryService.CreateIndustry(c.Request.Context(), membership.CreateIndustryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toIndustryResponse(industry))
}

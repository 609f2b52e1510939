package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memberconnect/backend/internal/application/membership"
	"github.com/memberconnect/backend/internal/infrastructure/persistence"
)

// SystemHandler handles health and stats endpoints
type SystemHandler struct {
	BaseHandler
	directoryService *membership.DirectoryService
	db               *persistence.Database
	startTime        time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(directoryService *membership.DirectoryService, db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		directoryService: directoryService,
		db:               db,
		startTime:        time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Database  string `json:"database" example:"ok"`
	GoVersion string `json:"go_version" example:"go1.24.0"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "unreachable"
		}
	}

	h.Success(c, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// StatsResponse represents directory counters for the admin dashboard
type StatsResponse struct {
	TotalUsers         int64 `json:"total_users"`
	TotalExperts       int64 `json:"total_experts"`
	TotalExpertises    int64 `json:"total_expertises"`
	ConnectionRequests int64 `json:"connection_requests"`
}

// GetStats godoc
// @Summary      Directory statistics
// @Description  Admin only
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=StatsResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /stats [get]
func (h *SystemHandler) GetStats(c *gin.Context) {
	stats, err := h.directoryService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, StatsResponse{
		TotalUsers:         stats.TotalUsers,
		TotalExperts:       stats.TotalExperts,
		TotalExpertises:    stats.TotalExpertises,
		ConnectionRequests: stats.ConnectionRequests,
	})
}

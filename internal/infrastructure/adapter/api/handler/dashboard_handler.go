package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	dashboardUseCase "github.com/kareem-anwar/finance-ledger/internal/domain/usecase/dashboard"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/middleware"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *dashboardUseCase.Service
	logger           coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboardService *dashboardUseCase.Service, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	snapshot, err := h.dashboardService.GetDashboardData(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(snapshot))
}

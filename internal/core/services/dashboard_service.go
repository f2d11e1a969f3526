package services

import (
	"context"

	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
)

// dashboardService aggregates completed sales for reporting.
type dashboardService struct {
	reportingRepo     portsrepo.ReportingRepositoryFacade
	lowStockThreshold int
	recentLimit       int
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(reportingRepo portsrepo.ReportingRepositoryFacade, lowStockThreshold, recentLimit int) portssvc.DashboardSvcFacade {
	return &dashboardService{
		reportingRepo:     reportingRepo,
		lowStockThreshold: lowStockThreshold,
		recentLimit:       recentLimit,
	}
}

// Ensure dashboardService implements the portssvc.DashboardSvcFacade interface
var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetStats computes the dashboard aggregates.
func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := s.reportingRepo.GetDashboardStats(ctx, s.lowStockThreshold, s.recentLimit)
	if err != nil {
		return nil, err
	}
	resp := dto.ToDashboardResponse(stats)
	return &resp, nil
}

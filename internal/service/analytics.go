package service

import (
	"context"

	"github.com/avc/hosting-storefront/internal/domain"
)

// AnalyticsService реализует domain.AnalyticsService
type AnalyticsService struct {
	repo domain.AnalyticsRepository
}

// NewAnalyticsService создает новый AnalyticsService
func NewAnalyticsService(repo domain.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Dashboard возвращает сводку по выручке, заказам и пользователям
func (s *AnalyticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.repo.GetDashboardStats(ctx)
	if err != nil {
		return nil, wrap(err, "analytics service: failed to load dashboard")
	}
	return stats, nil
}

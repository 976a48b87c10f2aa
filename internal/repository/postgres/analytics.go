package postgres

import (
	"context"
	"fmt"

	"github.com/avc/hosting-storefront/internal/domain"
)

// AnalyticsRepository считает агрегаты для админ-панели
type AnalyticsRepository struct {
	db DBTX
}

// NewAnalyticsRepository создает новый AnalyticsRepository
func NewAnalyticsRepository(db DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// GetDashboardStats возвращает сводку одним запросом
func (r *AnalyticsRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	err := r.db.QueryRow(ctx,
		`SELECT
		    COALESCE(SUM(final_price) FILTER (WHERE status IN ('active', 'expired')), 0),
		    COUNT(*),
		    COUNT(*) FILTER (WHERE status = 'active'),
		    COUNT(*) FILTER (WHERE status IN ('pending_upload', 'payment_uploaded')),
		    COALESCE(SUM(final_price) FILTER (WHERE status IN ('pending_upload', 'payment_uploaded')), 0),
		    (SELECT COUNT(*) FROM users)
		 FROM orders`,
	).Scan(
		&stats.TotalRevenue,
		&stats.TotalOrders,
		&stats.ActiveOrders,
		&stats.PendingPayments.Count,
		&stats.PendingPayments.Amount,
		&stats.TotalUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get dashboard stats: %w", err)
	}

	return stats, nil
}

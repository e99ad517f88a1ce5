package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLastOrdersQueryHandler retrieves the short closed-orders history for a
// user profile: COMPLETED and REJECTED orders only, newest first.
type GetLastOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetLastOrdersQueryHandler creates a handler for recent-history queries.
func NewGetLastOrdersQueryHandler(db *gorm.DB) GetLastOrdersQueryHandler {
	return GetLastOrdersQueryHandler{db: db}
}

type lastOrderRow struct {
	ID              int64      `gorm:"column:id"`
	Status          string     `gorm:"column:status"`
	OrderedAt       time.Time  `gorm:"column:ordered_at"`
	StatusChangedAt *time.Time `gorm:"column:status_changed_at"`
	JobID           uuid.UUID  `gorm:"column:job_id"`
	JobName         string     `gorm:"column:job_name"`
	JobPrice        float64    `gorm:"column:job_price"`
	JobCoverURL     *string    `gorm:"column:job_cover_url"`
}

// Handle executes the recent-history query. An empty history yields an
// empty slice, not an error.
func (h GetLastOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetLastOrdersQuery,
) ([]LastOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]lastOrderRow, 0, lastOrdersLimit)
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id,
			orders.status,
			orders.ordered_at,
			orders.status_changed_at,
			jobs.id AS job_id,
			jobs.name AS job_name,
			jobs.price AS job_price,
			jobs.cover_url AS job_cover_url`).
		Joins("JOIN jobs ON jobs.id = orders.job_id").
		Where("orders.user_id = ?", query.UserID().Bytes()).
		Where("orders.status IN ?", []string{order.Completed.String(), order.Rejected.String()}).
		Order("orders.ordered_at DESC").
		Limit(lastOrdersLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]LastOrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, LastOrderResponse{
			ID:              row.ID,
			Status:          row.Status,
			OrderedAt:       row.OrderedAt,
			StatusChangedAt: row.StatusChangedAt,
			JobID:           row.JobID.String(),
			JobName:         row.JobName,
			JobPrice:        row.JobPrice,
			JobCoverURL:     row.JobCoverURL,
		})
	}

	return orders, nil
}

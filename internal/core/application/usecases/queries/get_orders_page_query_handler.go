package queries

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersPageQueryHandler builds filtered, paginated projections over the
// order store. The filter is composed dynamically; the only supported
// ordering is newest first by the ordering timestamp.
//
// The transition table is injected so the default status subset (used when
// no explicit status filter is supplied) stays in sync with the configured
// terminal states.
type GetOrdersPageQueryHandler struct {
	db    *gorm.DB
	table order.TransitionTable
}

// NewGetOrdersPageQueryHandler creates a handler for paged order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersPageQueryHandler(db *gorm.DB, table order.TransitionTable) GetOrdersPageQueryHandler {
	return GetOrdersPageQueryHandler{db: db, table: table}
}

// orderSummaryRow is the scan target for the joined listing projection.
type orderSummaryRow struct {
	OrderID        int64     `gorm:"column:order_id"`
	Status         string    `gorm:"column:status"`
	OrderedAt      time.Time `gorm:"column:ordered_at"`
	JobName        string    `gorm:"column:job_name"`
	JobDescription string    `gorm:"column:job_description"`
	JobPrice       float64   `gorm:"column:job_price"`
	JobCoverURL    *string   `gorm:"column:job_cover_url"`
	CategoryName   string    `gorm:"column:category_name"`
	MasterSurname  string    `gorm:"column:master_surname"`
	MasterName     string    `gorm:"column:master_name"`
	MasterCityID   int       `gorm:"column:master_city_id"`
}

// Handle executes the listing query.
//
// The filter is applied in a fixed sequence: perspective, status (explicit
// or the closed-orders default), job name search, category. The total count
// is evaluated over the filtered set before pagination, so pages beyond the
// last one come back empty but keep the same TotalCount.
func (h GetOrdersPageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPageQuery,
) (GetOrdersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersPageResponse{}, err
	}

	filtered := func() *gorm.DB {
		return h.applyFilter(ctx, query)
	}

	var totalCount int64
	if err := filtered().Count(&totalCount).Error; err != nil {
		return GetOrdersPageResponse{}, err
	}

	rows := make([]orderSummaryRow, 0, query.PageSize())
	err := filtered().
		Select(`orders.id AS order_id,
			orders.status,
			orders.ordered_at,
			jobs.name AS job_name,
			jobs.description AS job_description,
			jobs.price AS job_price,
			jobs.cover_url AS job_cover_url,
			categories.name AS category_name,
			masters.surname AS master_surname,
			masters.name AS master_name,
			masters.city AS master_city_id`).
		Order("orders.ordered_at DESC").
		Offset(query.PageNumber() * query.PageSize()).
		Limit(query.PageSize()).
		Scan(&rows).Error
	if err != nil {
		return GetOrdersPageResponse{}, err
	}

	items := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, OrderSummaryResponse{
			OrderID:        row.OrderID,
			Status:         row.Status,
			OrderedAt:      row.OrderedAt,
			JobName:        row.JobName,
			JobDescription: row.JobDescription,
			JobPrice:       row.JobPrice,
			JobCoverURL:    row.JobCoverURL,
			CategoryName:   row.CategoryName,
			MasterFullName: strings.TrimSpace(row.MasterSurname + " " + row.MasterName),
			MasterCityID:   row.MasterCityID,
		})
	}

	return GetOrdersPageResponse{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: query.PageNumber(),
		PageSize:   query.PageSize(),
	}, nil
}

// applyFilter builds the joined, restricted base query. Called once for the
// count and once for the page so the two statements never share state.
func (h GetOrdersPageQueryHandler) applyFilter(ctx context.Context, query GetOrdersPageQuery) *gorm.DB {
	filter := query.Filter()
	userID := query.UserID().Bytes()

	db := h.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN jobs ON jobs.id = orders.job_id").
		Joins("JOIN categories ON categories.id = jobs.category_id").
		Joins("JOIN users AS masters ON masters.id = jobs.master_id")

	if filter.MasterOrders {
		db = db.Where("jobs.master_id = ?", userID)
	} else {
		// Customer perspective excludes self-service orders where the owner
		// also masters the job.
		db = db.Where("orders.user_id = ?", userID).
			Where("jobs.master_id <> ?", userID)
	}

	if filter.Status != nil {
		db = db.Where("orders.status = ?", *filter.Status)
	} else {
		db = db.Where("orders.status IN ?", h.closedStatuses())
	}

	if filter.Search != nil && *filter.Search != "" {
		db = db.Where("jobs.name ILIKE ?", "%"+*filter.Search+"%")
	}

	if filter.CategoryID != nil {
		db = db.Where("jobs.category_id = ?", *filter.CategoryID)
	}

	return db
}

func (h GetOrdersPageQueryHandler) closedStatuses() []string {
	terminal := h.table.TerminalStatuses()
	statuses := make([]string, 0, len(terminal))
	for _, s := range terminal {
		statuses = append(statuses, s.String())
	}
	return statuses
}

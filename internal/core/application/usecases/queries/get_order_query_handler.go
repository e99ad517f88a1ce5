package queries

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its owning user and job
// from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderDetailsRow struct {
	ID              int64      `gorm:"column:id"`
	Status          string     `gorm:"column:status"`
	OrderedAt       time.Time  `gorm:"column:ordered_at"`
	StatusChangedAt *time.Time `gorm:"column:status_changed_at"`

	UserID         uuid.UUID `gorm:"column:user_id"`
	UserSurname    string    `gorm:"column:user_surname"`
	UserName       string    `gorm:"column:user_name"`
	UserPatronymic string    `gorm:"column:user_patronymic"`
	UserEmail      string    `gorm:"column:user_email"`
	UserAvatarPath string    `gorm:"column:user_avatar_path"`

	CityID     int    `gorm:"column:city_id"`
	CityName   string `gorm:"column:city_name"`
	CityRegion string `gorm:"column:city_region"`

	JobID          uuid.UUID `gorm:"column:job_id"`
	JobName        string    `gorm:"column:job_name"`
	JobDescription string    `gorm:"column:job_description"`
	JobPrice       float64   `gorm:"column:job_price"`
	JobCoverURL    *string   `gorm:"column:job_cover_url"`
	JobCategoryID  int       `gorm:"column:job_category_id"`
}

// Handle executes the detail query.
// Returns *errs.ObjectNotFoundError when no order matches the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderResponse{}, err
	}

	var row orderDetailsRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id,
			orders.status,
			orders.ordered_at,
			orders.status_changed_at,
			users.id AS user_id,
			users.surname AS user_surname,
			users.name AS user_name,
			users.patronymic AS user_patronymic,
			users.email AS user_email,
			users.avatar_path AS user_avatar_path,
			cities.id AS city_id,
			cities.name AS city_name,
			cities.region AS city_region,
			jobs.id AS job_id,
			jobs.name AS job_name,
			jobs.description AS job_description,
			jobs.price AS job_price,
			jobs.cover_url AS job_cover_url,
			jobs.category_id AS job_category_id`).
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN cities ON cities.id = users.city").
		Joins("JOIN jobs ON jobs.id = orders.job_id").
		Where("orders.id = ?", query.OrderID()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderResponse{}, err
	}

	return GetOrderResponse{
		ID:              row.ID,
		Status:          row.Status,
		OrderedAt:       row.OrderedAt,
		StatusChangedAt: row.StatusChangedAt,
		User: UserResponse{
			ID:         row.UserID.String(),
			Surname:    row.UserSurname,
			Name:       row.UserName,
			Patronymic: row.UserPatronymic,
			Email:      row.UserEmail,
			AvatarPath: row.UserAvatarPath,
			City: CityResponse{
				ID:     row.CityID,
				Name:   row.CityName,
				Region: row.CityRegion,
			},
		},
		Job: JobResponse{
			ID:          row.JobID.String(),
			Name:        row.JobName,
			Description: row.JobDescription,
			Price:       row.JobPrice,
			CoverURL:    row.JobCoverURL,
			CategoryID:  row.JobCategoryID,
		},
	}, nil
}

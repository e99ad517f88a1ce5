// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is a bigserial assigned by the database on insert; user and
// job references are indexed for the listing queries.
type OrderDTO struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	UserID          uuid.UUID  `gorm:"type:uuid;index"`
	JobID           uuid.UUID  `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(15);index"`
	OrderedAt       time.Time  `gorm:"index"`
	StatusChangedAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID(),
		UserID:          aggregate.UserID().Bytes(),
		JobID:           aggregate.JobID().Bytes(),
		Status:          aggregate.Status().String(),
		OrderedAt:       aggregate.OrderedAt(),
		StatusChangedAt: aggregate.StatusChangedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		userID,
		jobID,
		order.Status(dto.Status),
		dto.OrderedAt,
		dto.StatusChangedAt,
	)
}

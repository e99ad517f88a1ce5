package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/outbox"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add saves a new pending message and assigns the generated identifier back.
func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	dto := fromDomain(message)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	message.ID = dto.ID
	return nil
}

// GetUnpublished retrieves up to limit pending messages, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]outbox.Message, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toDomain(dto))
	}

	return messages, nil
}

// MarkPublished records the publication moment for the message.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id).
		Update("published_at", at)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id)
	}

	return nil
}

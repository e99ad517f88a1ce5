// Package outboxrepo persists pending lifecycle event messages for the
// transactional outbox. Rows are written in the same transaction as the
// order mutation they describe and marked published by the dispatch job.
package outboxrepo

import (
	"time"

	"marketplace/internal/core/domain/model/outbox"
)

// OutboxMessageDTO represents the database structure for pending event messages.
// PublishedAt stays NULL until the dispatch job hands the row to the broker.
type OutboxMessageDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Key         string     `gorm:"type:varchar(64);index"`
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(message *outbox.Message) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          message.ID,
		Key:         message.Key,
		Payload:     message.Payload,
		CreatedAt:   message.CreatedAt,
		PublishedAt: message.PublishedAt,
	}
}

func toDomain(dto OutboxMessageDTO) outbox.Message {
	return outbox.Message{
		ID:          dto.ID,
		Key:         dto.Key,
		Payload:     dto.Payload,
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	}
}

// Package userrepo provides read-side access to the user store for the
// order lifecycle. User records are owned elsewhere; this package only
// answers existence checks against the shared users table.
package userrepo

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO mirrors the shared users table. Only the columns the order core
// reads are mapped.
type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(100);uniqueIndex"`
	Surname    string    `gorm:"type:varchar(100)"`
	Name       string    `gorm:"type:varchar(100)"`
	Patronymic string    `gorm:"type:varchar(100)"`
	AvatarPath string
	City       int
	CreatedAt  time.Time
}

// TableName specifies the database table name for user records.
func (UserDTO) TableName() string {
	return "users"
}

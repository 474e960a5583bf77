package models

import (
	"time"

	"github.com/angelmondragon/fireshop-backend/pkg/enums"
	"github.com/google/uuid"
)

// User represents the canonical identity entity.
type User struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email          string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	HashedPassword string         `gorm:"column:hashed_password;not null"`
	Role           enums.UserRole `gorm:"column:role;not null;default:MEMBER"`
	LastLoginAt    *time.Time     `gorm:"column:last_login_at"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

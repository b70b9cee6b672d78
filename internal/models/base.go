package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BaseModel replaces gorm.Model with an opaque string primary key.
// IDs are assigned in each model's BeforeCreate hook.
type BaseModel struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Run records one completed (or missed) outing under an event. UserID is
// nullable: deleting a user keeps their historical runs with the reference
// cleared.
type Run struct {
	BaseModel

	EventID string    `gorm:"not null;index" json:"event_id"`
	UserID  *string   `gorm:"index" json:"user_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	// Relationships
	Event Event `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User  *User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

func (r *Run) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID("run")
	}
	return nil
}

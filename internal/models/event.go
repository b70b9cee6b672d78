package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	BaseModel

	PlanID       string    `gorm:"not null;index" json:"plan_id"`
	Name         string    `gorm:"not null" json:"name"`
	Date         time.Time `json:"date"`
	Distance     float64   `json:"distance"`
	DistanceUnit string    `json:"distance_unit"`

	// Relationships
	Plan Plan  `gorm:"foreignKey:PlanID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Runs []Run `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewID("evt")
	}
	return nil
}

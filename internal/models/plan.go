package models

import (
	"time"

	"gorm.io/gorm"
)

type Plan struct {
	BaseModel

	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Distance     float64   `json:"distance"`
	DistanceUnit string    `json:"distance_unit"`

	// Relationships
	Memberships []Membership `gorm:"foreignKey:PlanID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Events      []Event      `gorm:"foreignKey:PlanID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID("plan")
	}
	return nil
}

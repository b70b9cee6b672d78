package models

import "gorm.io/gorm"

// Membership joins a user to a plan with a permission tier. The composite
// unique index is the source of truth for the one-membership-per-pair rule.
type Membership struct {
	BaseModel

	UserID string `gorm:"not null;uniqueIndex:idx_membership_user_plan" json:"user_id"`
	PlanID string `gorm:"not null;uniqueIndex:idx_membership_user_plan" json:"plan_id"`
	Tier   Tier   `gorm:"not null" json:"tier"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Plan Plan `gorm:"foreignKey:PlanID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID("mbr")
	}
	return nil
}

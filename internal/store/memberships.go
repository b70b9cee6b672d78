package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// Memberships holds the (user, plan, tier) associations.
type Memberships struct {
	db *gorm.DB
}

// Member pairs a plan member with their permission tier.
type Member struct {
	User models.User `json:"user"`
	Tier models.Tier `json:"tier"`
}

// Add enrolls a user in a plan. The composite unique index resolves
// concurrent adds for the same pair: the first commit wins, the second
// returns ErrConflict.
func (s *Memberships) Add(userID, planID string, tier models.Tier) (models.Membership, error) {
	membership := models.Membership{
		UserID: userID,
		PlanID: planID,
		Tier:   tier,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		var plan models.Plan

		if err := tx.First(&plan, "id = ?", planID).Error; err != nil {
			return err
		}

		return tx.Create(&membership).Error
	})

	if err != nil {
		return models.Membership{}, translate(err)
	}

	return membership, nil
}

func (s *Memberships) Remove(userID, planID string) error {
	result := s.db.Where("user_id = ? AND plan_id = ?", userID, planID).Delete(&models.Membership{})

	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Memberships) ListMembers(planID string) ([]Member, error) {
	var plan models.Plan

	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		return nil, translate(err)
	}

	var memberships []models.Membership

	if err := s.db.Preload("User").Where("plan_id = ?", planID).Find(&memberships).Error; err != nil {
		return nil, translate(err)
	}

	members := make([]Member, 0, len(memberships))

	for _, membership := range memberships {
		members = append(members, Member{
			User: membership.User,
			Tier: membership.Tier,
		})
	}

	return members, nil
}

func (s *Memberships) ListPlans(userID string) ([]models.Plan, error) {
	var user models.User

	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}

	plans := make([]models.Plan, 0)

	err := s.db.
		Joins("JOIN memberships ON memberships.plan_id = plans.id").
		Where("memberships.user_id = ?", userID).
		Find(&plans).Error

	if err != nil {
		return nil, translate(err)
	}

	return plans, nil
}

func (s *Memberships) GetTier(userID, planID string) (models.Tier, error) {
	var membership models.Membership

	if err := s.db.First(&membership, "user_id = ? AND plan_id = ?", userID, planID).Error; err != nil {
		return "", translate(err)
	}

	return membership.Tier, nil
}

// HasAtLeast reports whether the user is a member of the plan with at least
// the required tier. A missing membership is not an error.
func (s *Memberships) HasAtLeast(userID, planID string, required models.Tier) (bool, error) {
	tier, err := s.GetTier(userID, planID)

	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return tier.AtLeast(required), nil
}

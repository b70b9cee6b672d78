package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// Plans holds training-plan records and owns their memberships and events.
type Plans struct {
	db *gorm.DB
}

// Create inserts the plan and an OWNER membership for the creator in one
// transaction; both succeed or both fail.
func (s *Plans) Create(name, description string, date time.Time, distance float64, unit, creatorUserID string) (models.Plan, error) {
	plan := models.Plan{
		Name:         name,
		Description:  description,
		Date:         date,
		Distance:     distance,
		DistanceUnit: unit,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var creator models.User

		if err := tx.First(&creator, "id = ?", creatorUserID).Error; err != nil {
			return err
		}

		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		membership := models.Membership{
			UserID: creator.ID,
			PlanID: plan.ID,
			Tier:   models.TierOwner,
		}

		return tx.Create(&membership).Error
	})

	if err != nil {
		return models.Plan{}, translate(err)
	}

	return plan, nil
}

func (s *Plans) Get(id string) (models.Plan, error) {
	var plan models.Plan

	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		return models.Plan{}, translate(err)
	}

	return plan, nil
}

func (s *Plans) Update(id, name, description string, date time.Time, distance float64, unit string) (models.Plan, error) {
	var plan models.Plan

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&plan, "id = ?", id).Error; err != nil {
			return err
		}

		plan.Name = name
		plan.Description = description
		plan.Date = date
		plan.Distance = distance
		plan.DistanceUnit = unit

		return tx.Save(&plan).Error
	})

	if err != nil {
		return models.Plan{}, translate(err)
	}

	return plan, nil
}

// Delete removes the plan, its memberships, its events and all runs of those
// events in one transaction.
func (s *Plans) Delete(id string) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.Plan

		if err := tx.First(&plan, "id = ?", id).Error; err != nil {
			return err
		}

		eventIDs := tx.Model(&models.Event{}).Select("id").Where("plan_id = ?", id)

		if err := tx.Where("event_id IN (?)", eventIDs).Delete(&models.Run{}).Error; err != nil {
			return err
		}

		if err := tx.Where("plan_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}

		if err := tx.Where("plan_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		return tx.Delete(&plan).Error
	}))
}

package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// Events holds event records scoped to a plan and owns their runs.
type Events struct {
	db *gorm.DB
}

func (s *Events) Create(name string, date time.Time, distance float64, unit, planID string) (models.Event, error) {
	event := models.Event{
		PlanID:       planID,
		Name:         name,
		Date:         date,
		Distance:     distance,
		DistanceUnit: unit,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.Plan

		if err := tx.First(&plan, "id = ?", planID).Error; err != nil {
			return err
		}

		return tx.Create(&event).Error
	})

	if err != nil {
		return models.Event{}, translate(err)
	}

	return event, nil
}

func (s *Events) Get(id string) (models.Event, error) {
	var event models.Event

	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		return models.Event{}, translate(err)
	}

	return event, nil
}

func (s *Events) Update(id, name string, date time.Time, distance float64, unit string) (models.Event, error) {
	var event models.Event

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			return err
		}

		event.Name = name
		event.Date = date
		event.Distance = distance
		event.DistanceUnit = unit

		return tx.Save(&event).Error
	})

	if err != nil {
		return models.Event{}, translate(err)
	}

	return event, nil
}

// Delete removes the event and all its runs in one transaction.
func (s *Events) Delete(id string) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event

		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Run{}).Error; err != nil {
			return err
		}

		return tx.Delete(&event).Error
	}))
}

// ListRuns returns all runs of an event, an empty slice when there are none
// and ErrNotFound when the event itself is absent.
func (s *Events) ListRuns(eventID string) ([]models.Run, error) {
	var event models.Event

	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		return nil, translate(err)
	}

	runs := make([]models.Run, 0)

	if err := s.db.Where("event_id = ?", eventID).Find(&runs).Error; err != nil {
		return nil, translate(err)
	}

	return runs, nil
}

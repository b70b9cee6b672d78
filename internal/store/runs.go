package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// Runs holds run records scoped to an event and a user.
type Runs struct {
	db *gorm.DB
}

func (s *Runs) Create(eventID, userID string, date time.Time, status string) (models.Run, error) {
	run := models.Run{
		EventID: eventID,
		UserID:  &userID,
		Date:    date,
		Status:  status,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event

		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			return err
		}

		var user models.User

		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		return tx.Create(&run).Error
	})

	if err != nil {
		return models.Run{}, translate(err)
	}

	return run, nil
}

func (s *Runs) Get(id string) (models.Run, error) {
	var run models.Run

	if err := s.db.First(&run, "id = ?", id).Error; err != nil {
		return models.Run{}, translate(err)
	}

	return run, nil
}

func (s *Runs) Update(id string, date time.Time, status string) (models.Run, error) {
	var run models.Run

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&run, "id = ?", id).Error; err != nil {
			return err
		}

		run.Date = date
		run.Status = status

		return tx.Save(&run).Error
	})

	if err != nil {
		return models.Run{}, translate(err)
	}

	return run, nil
}

func (s *Runs) Delete(id string) error {
	result := s.db.Delete(&models.Run{}, "id = ?", id)

	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

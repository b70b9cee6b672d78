package store

import (
	"gorm.io/gorm"

	"github.com/trainlog-dev/trainlog/internal/models"
)

// Users holds user records. Email uniqueness is enforced by the store's
// unique index, not by a pre-insert check.
type Users struct {
	db *gorm.DB
}

// UserUpdate carries the optional fields of a profile update. A nil field
// means "unchanged".
type UserUpdate struct {
	Username *string
	Email    *string
}

func (s *Users) Create(username, email, passwordHash string) (models.User, error) {
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}

func (s *Users) GetByID(id string) (models.User, error) {
	var user models.User

	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}

func (s *Users) GetByEmail(email string) (models.User, error) {
	var user models.User

	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}

func (s *Users) GetByUsername(username string) (models.User, error) {
	var user models.User

	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}

func (s *Users) Update(id string, update UserUpdate) (models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})

		if update.Username != nil {
			updates["username"] = *update.Username
		}

		if update.Email != nil {
			updates["email"] = *update.Email
		}

		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&user).Updates(updates).Error
	})

	if err != nil {
		return models.User{}, translate(err)
	}

	return user, nil
}

// Delete removes the user and all their memberships in one transaction.
// Historical runs are kept with the user reference cleared.
func (s *Users) Delete(id string) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Run{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	}))
}

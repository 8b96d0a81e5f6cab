package repositories

import (
	"time"

	"gatestore-app/models"
)

func (r *Repository) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ListOfficers returns the accounts that may be assigned as approving officer.
func (r *Repository) ListOfficers() ([]models.User, error) {
	var officers []models.User
	err := r.db.
		Where("role IN ? AND is_active = ?", []string{models.RoleOfficer, models.RoleAdmin}, true).
		Order("name").
		Find(&officers).Error
	if err != nil {
		return nil, err
	}
	return officers, nil
}

func (r *Repository) CreateLoginLog(entry *models.LoginLog) error {
	return r.db.Create(entry).Error
}

func (r *Repository) CloseLoginLog(userID uint, at time.Time) error {
	return r.db.Model(&models.LoginLog{}).
		Where("user_id = ? AND logout_at IS NULL", userID).
		Update("logout_at", &at).Error
}

package repositories

import (
	"gatestore-app/models"
	"gatestore-app/types"
)

func (r *Repository) CreateIssue(issue *models.MaterialIssue) error {
	return r.db.Create(issue).Error
}

func (r *Repository) GetIssue(id types.SnowflakeID) (*models.MaterialIssue, error) {
	var issue models.MaterialIssue
	err := r.db.Preload("Material").First(&issue, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &issue, nil
}

func (r *Repository) SaveIssue(issue *models.MaterialIssue) error {
	return r.db.Save(issue).Error
}

// TransitionIssueStatus flips the issue status only while it still holds the
// expected value; a decision that lost the race gets ErrStateConflict.
func (r *Repository) TransitionIssueStatus(id types.SnowflakeID, from, to string) error {
	res := r.db.Model(&models.MaterialIssue{}).
		Where("id = ? AND status = ?", id, from).
		UpdateColumn("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}

func (r *Repository) ListIssues(filter IssueFilter) ([]models.MaterialIssue, error) {
	query := r.db.Preload("Material").Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OfficerID != 0 {
		query = query.Where("officer_id = ?", filter.OfficerID)
	}

	var issues []models.MaterialIssue
	if err := query.Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

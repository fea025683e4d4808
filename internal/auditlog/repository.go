package auditlog

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(entry *AuditLog) error {
	return r.DB.Create(entry).Error
}

func (r *Repository) ListByOrganization(orgID uint, limit, offset int) ([]AuditLog, error) {
	var logs []AuditLog
	err := r.DB.
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

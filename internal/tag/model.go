package tag

import "time"

// Tag is an organisation-scoped label. Names are stored lowercase so
// form input casing never creates duplicates.
type Tag struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrganizationID uint      `gorm:"uniqueIndex:idx_org_tag;not null" json:"organization_id"`
	Name           string    `gorm:"uniqueIndex:idx_org_tag;not null" json:"name"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

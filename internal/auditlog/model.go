package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions recorded by the event and auth modules.
const (
	ActionEventCreated   = "EVENT_CREATED"
	ActionEventUpdated   = "EVENT_UPDATED"
	ActionEventCancelled = "EVENT_CANCELLED"
	ActionUserLogin      = "USER_LOGIN"
	ActionUserRegistered = "USER_REGISTERED"
)

type AuditLog struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         *uint          `gorm:"index" json:"user_id,omitempty"`
	OrganizationID *uint          `gorm:"index" json:"organization_id,omitempty"`
	Action         string         `gorm:"type:varchar(50);not null;index" json:"action"`
	Details        datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	IPAddress      string         `gorm:"type:varchar(45)" json:"ip_address"`
	Status         string         `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

package auditlog

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
)

type Service struct {
	Repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{Repo: repo}
}

// LogAction records an audit entry. Audit failures are logged and swallowed:
// they must never fail the operation being audited.
func (s *Service) LogAction(ctx context.Context, userID, orgID *uint, action string, details map[string]interface{}, ip, status string) {
	entry := &AuditLog{
		UserID:         userID,
		OrganizationID: orgID,
		Action:         action,
		IPAddress:      ip,
		Status:         status,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(raw)
		}
	}

	if err := s.Repo.Create(entry); err != nil {
		log.Printf("audit log write failed (%s): %v", action, err)
	}
}

func (s *Service) List(orgID uint, limit, offset int) ([]AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.ListByOrganization(orgID, limit, offset)
}

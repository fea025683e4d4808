package reports

import "time"

type Service struct {
	Repo     *Repository
	Exporter Exporter
}

func NewService(repo *Repository, exporter Exporter) *Service {
	return &Service{Repo: repo, Exporter: exporter}
}

// ExportEvents builds the organisation's event report in the given format.
func (s *Service) ExportEvents(orgID uint, format string, from, to time.Time) ([]byte, string, string, error) {
	rows, err := s.Repo.ListEvents(orgID, from, to)
	if err != nil {
		return nil, "", "", err
	}
	return s.Exporter.Export(format, rows)
}

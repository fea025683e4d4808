package event

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mayurihegde/evently-backend/internal/auditlog"
	"github.com/mayurihegde/evently-backend/internal/eventform"
	"github.com/mayurihegde/evently-backend/internal/notification"
	"github.com/mayurihegde/evently-backend/monitoring"
)

var (
	ErrNotFound = errors.New("event not found")
	ErrNotOwner = errors.New("event belongs to another organisation")

	// ErrUpdateFailed is the opaque failure surfaced when the storage
	// layer rejects a write; the caller may correct and resubmit.
	ErrUpdateFailed = errors.New("update failed")
)

// Service wraps event business logic: validation and differential patching
// happen in the eventform core, persistence in the repository.
type Service struct {
	Repo     *Repository
	AuditSvc *auditlog.Service
	Notifier *notification.Publisher
	Loc      *time.Location
}

func NewService(repo *Repository, auditSvc *auditlog.Service, notifier *notification.Publisher, loc *time.Location) *Service {
	return &Service{Repo: repo, AuditSvc: auditSvc, Notifier: notifier, Loc: loc}
}

// Create validates a full form submission and inserts a new event.
// Validation failures come back as FieldErrors, never as an error.
func (s *Service) Create(req *CreateEventRequest, orgID, userID uint, ip string) (*Event, eventform.FieldErrors, error) {
	form := eventform.DeriveConstraints(req.FormState)
	norm, errs := eventform.Validate(form, time.Now(), s.Loc)
	if errs != nil {
		monitoring.TrackValidationFailure("create")
		return nil, errs, nil
	}

	start, _ := eventform.CombineDateTime(norm.StartDate, norm.StartTime, s.Loc)
	end, _ := eventform.CombineDateTime(norm.EndDate, norm.EndTime, s.Loc)

	e := &Event{
		OrganizationID: orgID,
		Title:          norm.Title,
		Description:    norm.Description,
		StartDatetime:  start,
		EndDatetime:    end,
		VenueID:        mustUint(norm.Venue),
		CategoryID:     mustUint(norm.Category),
		SubcategoryID:  mustUint(norm.Subcategory),
		IsOnline:       norm.IsOnline,
		AccessLink:     norm.AccessLink,
		IsRecurring:    norm.IsRecurring,
		ImageURL:       norm.ImageURL,
		SignupRequired: norm.SignupRequired,
		Status:         StatusPublished,
	}
	if len(norm.SelectedTags) > 0 {
		e.Tags = datatypes.NewJSONSlice(norm.SelectedTags)
	}
	if norm.IsRecurring {
		sched := eventform.Schedule{Frequency: norm.RecurringFrequency, Day: norm.RecurringDay}
		raw, _ := jsonMarshal(sched)
		e.RecurringSchedule = raw
	}

	if err := s.Repo.Create(e); err != nil {
		s.audit(userID, orgID, auditlog.ActionEventCreated, map[string]interface{}{
			"title": norm.Title, "error": err.Error(),
		}, ip, "failure")
		return nil, nil, err
	}

	monitoring.TrackEventOperation("create", "success")
	s.audit(userID, orgID, auditlog.ActionEventCreated, map[string]interface{}{
		"event_id": e.ID, "title": e.Title,
	}, ip, "success")
	s.notify(e, "created")
	return e, nil, nil
}

// Update runs the edit pipeline: derive -> validate -> snapshot -> build
// patch -> apply. An empty patch is a recognized no-op and skips the write
// entirely, returning the unchanged record.
func (s *Service) Update(id uint, req *UpdateEventRequest, orgID, userID uint, ip string) (*Event, eventform.FieldErrors, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if e.OrganizationID != orgID {
		return nil, nil, ErrNotOwner
	}

	form := eventform.DeriveConstraints(req.Form)
	norm, errs := eventform.Validate(form, time.Now(), s.Loc)
	if errs != nil {
		monitoring.TrackValidationFailure("update")
		return nil, errs, nil
	}

	touched := eventform.NewTouchedFieldSet(req.Touched...)
	patch := eventform.BuildPatch(norm, e.Snapshot(), touched, s.Loc)
	if len(patch) == 0 {
		monitoring.TrackPatchNoop()
		return e, nil, nil
	}

	if err := s.Repo.ApplyPatch(id, patch); err != nil {
		log.Printf("event %d patch rejected: %v", id, err)
		monitoring.TrackEventOperation("update", "failure")
		s.audit(userID, orgID, auditlog.ActionEventUpdated, map[string]interface{}{
			"event_id": id, "error": err.Error(),
		}, ip, "failure")
		return nil, nil, ErrUpdateFailed
	}

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	monitoring.TrackEventOperation("update", "success")
	s.audit(userID, orgID, auditlog.ActionEventUpdated, map[string]interface{}{
		"event_id": id, "fields": patchFields(patch),
	}, ip, "success")
	s.notify(updated, "updated")
	return updated, nil, nil
}

func (s *Service) Get(id uint) (*Event, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Detail returns the event with its next occurrence resolved for the
// public event page.
func (s *Service) Detail(id uint) (*EventDetail, error) {
	e, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	detail := e.Detail(time.Now())
	return &detail, nil
}

// EditForm returns the denormalized projection an edit session starts from.
func (s *Service) EditForm(id, orgID uint) (*eventform.FormState, error) {
	e, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if e.OrganizationID != orgID {
		return nil, ErrNotOwner
	}
	form := eventform.FormFromRecord(e.Snapshot(), s.Loc)
	return &form, nil
}

func (s *Service) ListPublic(f Filters) ([]PublicEventRow, error) {
	return s.Repo.ListPublic(f, time.Now(), s.Loc)
}

func (s *Service) ListByOrganization(orgID uint, limit, offset int, search string) ([]Event, error) {
	return s.Repo.ListByOrganization(orgID, limit, offset, search)
}

func (s *Service) Cancel(id, orgID, userID uint, ip string) error {
	e, err := s.Get(id)
	if err != nil {
		return err
	}
	if e.OrganizationID != orgID {
		return ErrNotOwner
	}

	if err := s.Repo.Cancel(id, orgID); err != nil {
		s.audit(userID, orgID, auditlog.ActionEventCancelled, map[string]interface{}{
			"event_id": id, "error": err.Error(),
		}, ip, "failure")
		return err
	}

	monitoring.TrackEventOperation("cancel", "success")
	s.audit(userID, orgID, auditlog.ActionEventCancelled, map[string]interface{}{
		"event_id": id, "title": e.Title,
	}, ip, "success")
	s.notify(e, "cancelled")
	return nil
}

func (s *Service) Stats(orgID uint) (*EventStatsResponse, error) {
	return s.Repo.GetStats(orgID, time.Now())
}

func (s *Service) audit(userID, orgID uint, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	s.AuditSvc.LogAction(context.Background(), &userID, &orgID, action, details, ip, status)
}

func (s *Service) notify(e *Event, action string) {
	if s.Notifier == nil {
		return
	}
	change := notification.EventChange{
		EventID:        e.ID,
		OrganizationID: e.OrganizationID,
		Action:         action,
		Title:          e.Title,
	}
	if err := s.Notifier.PublishEventChange(context.Background(), change); err != nil {
		log.Printf("event change publish failed: %v", err)
	}
}

// mustUint converts an already-validated numeric reference field.
func mustUint(s string) uint {
	v, _ := strconv.Atoi(s)
	return uint(v)
}

func jsonMarshal(v interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	return datatypes.JSON(raw), err
}

func patchFields(patch eventform.Patch) []string {
	fields := make([]string, 0, len(patch))
	for f := range patch {
		fields = append(fields, f)
	}
	return fields
}

package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mayurihegde/evently-backend/internal/category"
	"github.com/mayurihegde/evently-backend/internal/event"
	"github.com/mayurihegde/evently-backend/internal/venue"
)

// Scheduler runs the background maintenance jobs: archiving past events
// nightly and keeping the reference-data caches warm.
type Scheduler struct {
	cron        *cron.Cron
	EventRepo   *event.Repository
	VenueSvc    *venue.Service
	CategorySvc *category.Service
	Loc         *time.Location
}

func NewScheduler(eventRepo *event.Repository, venueSvc *venue.Service, categorySvc *category.Service, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		EventRepo:   eventRepo,
		VenueSvc:    venueSvc,
		CategorySvc: categorySvc,
		Loc:         loc,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("15 0 * * *", s.archivePastEvents); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every 10m", s.warmReferenceCaches); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Background jobs started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) archivePastEvents() {
	count, err := s.EventRepo.ArchivePast(time.Now())
	if err != nil {
		log.Printf("archive past events failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("archived %d past events", count)
	}
}

func (s *Scheduler) warmReferenceCaches() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.VenueSvc.List(ctx); err != nil {
		log.Printf("venue cache warm failed: %v", err)
	}
	if _, err := s.CategorySvc.ListCategories(ctx); err != nil {
		log.Printf("category cache warm failed: %v", err)
	}
}

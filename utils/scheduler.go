package utils

import (
	"context"
	"elearning/models"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// readNotificationRetention is how long read notifications are kept.
const readNotificationRetention = 30 * 24 * time.Hour

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
	log  zerolog.Logger
}

func NewScheduler(db *gorm.DB, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		db:   db,
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// ScheduleNotificationCleanup registers the read-notification purge on spec.
func (s *Scheduler) ScheduleNotificationCleanup(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.log.Info().Msg("Running read notification cleanup...")
		deleted, err := DeleteReadNotifications(context.Background(), s.db, nowFunc().Add(-readNotificationRetention))
		if err != nil {
			s.log.Error().Err(err).Msg("Error deleting read notifications")
			return
		}
		s.log.Info().Int64("deleted", deleted).Msg("Read notification cleanup finished")
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("spec", spec).Msg("Notification cleanup scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// DeleteReadNotifications removes read notifications created before cutoff.
func DeleteReadNotifications(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.NotificationRead, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

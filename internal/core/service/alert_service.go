package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

// AlertDedup abstracts the repeat-alert suppression store (Redis).
type AlertDedup interface {
	Seen(ctx context.Context, patientID int64) (bool, error)
	Mark(ctx context.Context, patientID int64) error
}

type alertService struct {
	repo  ports.AlertRepository
	dedup AlertDedup
	log   zerolog.Logger
}

// NewAlertService returns an AlertService implementation.
func NewAlertService(repo ports.AlertRepository, dedup AlertDedup, log zerolog.Logger) ports.AlertService {
	return &alertService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single emergency alert. Actual
// notification delivery is out of scope; the "notified" log line is the
// whole of it.
func (s *alertService) Process(ctx context.Context, alert domain.EmergencyAlert) error {
	seen, err := s.dedup.Seen(ctx, alert.PatientID)
	if err != nil {
		s.log.Warn().Err(err).Int64("patient_id", alert.PatientID).Msg("alert dedup check failed, processing anyway")
	} else if seen {
		s.log.Debug().Int64("patient_id", alert.PatientID).Msg("repeat alert suppressed")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, alert.PatientID); markErr != nil {
		s.log.Warn().Err(markErr).Int64("patient_id", alert.PatientID).Msg("failed to set alert dedup key")
	}

	if err := s.repo.Insert(ctx, &alert); err != nil {
		return err
	}

	s.log.Info().
		Int64("patient_id", alert.PatientID).
		Time("raised_at", alert.RaisedAt).
		Msg("emergency alert recorded, medical personnel notified")

	return nil
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

// HealthLogService records and reads patient symptom logs.
type HealthLogService struct {
	repo   ports.HealthLogRepository
	logger zerolog.Logger
}

func NewHealthLogService(repo ports.HealthLogRepository, logger zerolog.Logger) *HealthLogService {
	return &HealthLogService{repo: repo, logger: logger}
}

// Create stores a new symptom log for patientID. The repository assigns the
// id; the timestamp is the current UTC time.
func (s *HealthLogService) Create(ctx context.Context, patientID int64, input ports.CreateHealthLogInput) (*domain.HealthLog, error) {
	if err := domain.ValidateCoughSeverity(input.CoughSeverity); err != nil {
		return nil, err
	}

	log := &domain.HealthLog{
		PatientID:       patientID,
		Timestamp:       time.Now().UTC(),
		CoughSeverity:   input.CoughSeverity,
		BreathingIssues: input.BreathingIssues,
		ChestPain:       input.ChestPain,
	}

	created, err := s.repo.Create(ctx, log)
	if err != nil {
		s.logger.Error().Err(err).Int64("patient_id", patientID).Msg("failed to create health log")
		return nil, err
	}

	s.logger.Info().Int64("log_id", created.ID).Int64("patient_id", patientID).Msg("health log created")

	return created, nil
}

// ListForPatient returns input.PatientID's logs newest-first. Patients may
// only read their own logs; doctors may read any patient's.
func (s *HealthLogService) ListForPatient(ctx context.Context, input ports.ListHealthLogsInput) ([]*domain.HealthLog, error) {
	if input.CallerRole == domain.RolePatient && input.CallerID != input.PatientID {
		return nil, domain.ErrForbidden
	}

	return s.repo.ListByPatient(ctx, input.PatientID)
}

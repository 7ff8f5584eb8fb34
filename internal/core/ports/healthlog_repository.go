package ports

import (
	"context"

	"github.com/breatheright/health-system/internal/core/domain"
)

// HealthLogRepository defines persistence operations for symptom logs.
type HealthLogRepository interface {
	// Create stores the log and assigns it a unique id.
	Create(ctx context.Context, log *domain.HealthLog) (*domain.HealthLog, error)
	// ListByPatient returns the patient's logs sorted newest-first.
	ListByPatient(ctx context.Context, patientID int64) ([]*domain.HealthLog, error)
}

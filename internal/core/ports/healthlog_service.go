package ports

import (
	"context"

	"github.com/breatheright/health-system/internal/core/domain"
)

// CreateHealthLogInput carries a single symptom report from a patient.
type CreateHealthLogInput struct {
	CoughSeverity   int
	BreathingIssues bool
	ChestPain       bool
}

// ListHealthLogsInput carries the parameters for reading a patient's logs.
// CallerID and CallerRole come from the authenticated request context and
// drive the access decision: patients read their own logs only, doctors read
// any patient's.
type ListHealthLogsInput struct {
	CallerID   int64
	CallerRole string
	PatientID  int64
}

// HealthLogService defines use-case operations for symptom logs.
type HealthLogService interface {
	Create(ctx context.Context, patientID int64, input CreateHealthLogInput) (*domain.HealthLog, error)
	ListForPatient(ctx context.Context, input ListHealthLogsInput) ([]*domain.HealthLog, error)
}

package ports

import (
	"context"

	"github.com/breatheright/health-system/internal/core/domain"
)

// AlertService processes emergency alerts dequeued by the dispatcher.
type AlertService interface {
	Process(ctx context.Context, alert domain.EmergencyAlert) error
}

// AlertRepository persists emergency alerts for audit.
type AlertRepository interface {
	Insert(ctx context.Context, alert *domain.EmergencyAlert) error
	ListRecent(ctx context.Context, limit int) ([]*domain.EmergencyAlert, error)
}

package memory

import (
	"context"
	"sync"

	"github.com/breatheright/health-system/internal/core/domain"
)

// AlertRepository keeps a bounded in-memory audit trail of emergency alerts.
type AlertRepository struct {
	mu     sync.Mutex
	alerts []*domain.EmergencyAlert
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

func (r *AlertRepository) Insert(_ context.Context, alert *domain.EmergencyAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *alert
	r.alerts = append(r.alerts, &clone)
	return nil
}

// ListRecent returns up to limit alerts, newest-first.
func (r *AlertRepository) ListRecent(_ context.Context, limit int) ([]*domain.EmergencyAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.alerts) {
		limit = len(r.alerts)
	}

	out := make([]*domain.EmergencyAlert, 0, limit)
	for i := len(r.alerts) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.alerts[i]
		out = append(out, &clone)
	}
	return out, nil
}

package memory

import (
	"context"
	"sync"
	"time"
)

// AlertDedup suppresses repeat alerts from the same patient within ttl.
// Used when no Redis backend is configured; same contract as redis.AlertDedup.
type AlertDedup struct {
	mu   sync.Mutex
	seen map[int64]time.Time
	ttl  time.Duration
}

func NewAlertDedup(ttl time.Duration) *AlertDedup {
	return &AlertDedup{seen: make(map[int64]time.Time), ttl: ttl}
}

func (d *AlertDedup) Seen(_ context.Context, patientID int64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	at, ok := d.seen[patientID]
	if !ok {
		return false, nil
	}
	if time.Since(at) >= d.ttl {
		delete(d.seen, patientID)
		return false, nil
	}
	return true, nil
}

func (d *AlertDedup) Mark(_ context.Context, patientID int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seen[patientID] = time.Now()
	return nil
}

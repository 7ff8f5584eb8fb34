package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultAlertTTL = 5 * time.Minute

// AlertDedup suppresses repeat emergency alerts from the same patient.
// Key format: alertdedup:<patient_id>
type AlertDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAlertDedup creates an AlertDedup wrapping the given Redis client.
// If ttl <= 0, defaultAlertTTL is used.
func NewAlertDedup(client *redis.Client, ttl time.Duration) *AlertDedup {
	if ttl <= 0 {
		ttl = defaultAlertTTL
	}
	return &AlertDedup{client: client, ttl: ttl}
}

// Seen reports whether the patient has raised an alert within the TTL window.
func (d *AlertDedup) Seen(ctx context.Context, patientID int64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(patientID)).Result()
	if err != nil {
		return false, fmt.Errorf("alert dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the patient's alert has been processed (expires after ttl).
func (d *AlertDedup) Mark(ctx context.Context, patientID int64) error {
	return d.client.Set(ctx, d.key(patientID), "1", d.ttl).Err()
}

func (d *AlertDedup) key(patientID int64) string {
	return fmt.Sprintf("alertdedup:%d", patientID)
}

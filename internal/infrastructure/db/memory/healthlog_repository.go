package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/breatheright/health-system/internal/core/domain"
)

// HealthLogRepository is a map-backed symptom log store.
type HealthLogRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.HealthLog
	nextID int64
}

func NewHealthLogRepository() *HealthLogRepository {
	return &HealthLogRepository{byID: make(map[int64]*domain.HealthLog), nextID: 1}
}

// Create stores the log and assigns the next sequential id.
func (r *HealthLogRepository) Create(_ context.Context, log *domain.HealthLog) (*domain.HealthLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *log
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone

	out := clone
	return &out, nil
}

// ListByPatient returns the patient's logs newest-first. Entries with equal
// timestamps keep the higher id first so ordering stays stable.
func (r *HealthLogRepository) ListByPatient(_ context.Context, patientID int64) ([]*domain.HealthLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.HealthLog, 0)
	for _, l := range r.byID {
		if l.PatientID == patientID {
			clone := *l
			out = append(out, &clone)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/breatheright/health-system/internal/api/metrics"
	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes emergency alerts to a fixed set of workers using
// consistent hashing on the patient id, guaranteeing per-patient ordering.
type Dispatcher struct {
	workers []chan domain.EmergencyAlert
	service ports.AlertService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AlertService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.EmergencyAlert, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.EmergencyAlert, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an alert to the worker responsible for its patient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(alert domain.EmergencyAlert) {
	i := d.shardIndex(alert.PatientID)
	d.workers[i] <- alert
	metrics.AlertsEnqueuedTotal.Inc()
	metrics.AlertsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a patient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(patientID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(patientID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.EmergencyAlert) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, alert); err != nil {
				metrics.AlertsProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Int64("patient_id", alert.PatientID).
					Int("worker_id", id).
					Msg("alert processing failed")
			} else {
				metrics.AlertsProcessedTotal.WithLabelValues("ok").Inc()
			}
			metrics.AlertsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}

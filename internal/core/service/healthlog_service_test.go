package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

type stubHealthLogRepo struct {
	logs   []*domain.HealthLog
	nextID int64
}

func newStubHealthLogRepo() *stubHealthLogRepo {
	return &stubHealthLogRepo{nextID: 1}
}

func (r *stubHealthLogRepo) Create(_ context.Context, log *domain.HealthLog) (*domain.HealthLog, error) {
	clone := *log
	clone.ID = r.nextID
	r.nextID++
	r.logs = append(r.logs, &clone)
	out := clone
	return &out, nil
}

func (r *stubHealthLogRepo) ListByPatient(_ context.Context, patientID int64) ([]*domain.HealthLog, error) {
	var out []*domain.HealthLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].PatientID == patientID {
			clone := *r.logs[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func TestHealthLogService_Create_Success(t *testing.T) {
	repo := newStubHealthLogRepo()
	svc := NewHealthLogService(repo, zerolog.Nop())

	before := time.Now().UTC()
	log, err := svc.Create(context.Background(), 1, ports.CreateHealthLogInput{
		CoughSeverity:   3,
		BreathingIssues: true,
		ChestPain:       false,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if log.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if log.PatientID != 1 {
		t.Fatalf("expected patient_id 1, got %d", log.PatientID)
	}
	if log.Timestamp.Before(before) {
		t.Fatalf("timestamp not set to current time: %v", log.Timestamp)
	}
	if log.CoughSeverity != 3 || !log.BreathingIssues || log.ChestPain {
		t.Fatalf("fields not preserved: %+v", log)
	}
}

func TestHealthLogService_Create_UniqueIDs(t *testing.T) {
	repo := newStubHealthLogRepo()
	svc := NewHealthLogService(repo, zerolog.Nop())

	first, err := svc.Create(context.Background(), 1, ports.CreateHealthLogInput{CoughSeverity: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), 1, ports.CreateHealthLogInput{CoughSeverity: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected unique ids, both %d", first.ID)
	}
}

func TestHealthLogService_Create_SeverityOutOfRange(t *testing.T) {
	repo := newStubHealthLogRepo()
	svc := NewHealthLogService(repo, zerolog.Nop())

	for _, severity := range []int{0, 6, -1, 100} {
		if _, err := svc.Create(context.Background(), 1, ports.CreateHealthLogInput{CoughSeverity: severity}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("severity %d: expected ErrValidation, got %v", severity, err)
		}
	}
	if len(repo.logs) != 0 {
		t.Fatalf("invalid input must not be stored, found %d logs", len(repo.logs))
	}
}

func TestHealthLogService_List_PatientReadsOwn(t *testing.T) {
	repo := newStubHealthLogRepo()
	svc := NewHealthLogService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 1, ports.CreateHealthLogInput{CoughSeverity: 2}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	logs, err := svc.ListForPatient(context.Background(), ports.ListHealthLogsInput{
		CallerID:   1,
		CallerRole: domain.RolePatient,
		PatientID:  1,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
}

func TestHealthLogService_List_PatientForbiddenForOthers(t *testing.T) {
	svc := NewHealthLogService(newStubHealthLogRepo(), zerolog.Nop())

	_, err := svc.ListForPatient(context.Background(), ports.ListHealthLogsInput{
		CallerID:   1,
		CallerRole: domain.RolePatient,
		PatientID:  2,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestHealthLogService_List_DoctorReadsAny(t *testing.T) {
	repo := newStubHealthLogRepo()
	svc := NewHealthLogService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 2, ports.CreateHealthLogInput{CoughSeverity: 5, BreathingIssues: true, ChestPain: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	logs, err := svc.ListForPatient(context.Background(), ports.ListHealthLogsInput{
		CallerID:   3,
		CallerRole: domain.RoleDoctor,
		PatientID:  2,
	})
	if err != nil {
		t.Fatalf("doctor list failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
}

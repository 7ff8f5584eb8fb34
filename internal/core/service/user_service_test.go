package service

import (
	"context"
	"errors"
	"testing"

	"github.com/breatheright/health-system/internal/core/domain"
)

func TestUserService_GetByID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(t))

	user, err := svc.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.Username != "doctor1" || user.Role != domain.RoleDoctor {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(t))

	if _, err := svc.GetByID(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListPatients(t *testing.T) {
	svc := NewUserService(newStubUserRepo(t))

	patients, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(patients))
	}
	// Insertion order of the seed set.
	if patients[0].ID != 1 || patients[1].ID != 2 {
		t.Fatalf("unexpected order: %d, %d", patients[0].ID, patients[1].ID)
	}
	for _, p := range patients {
		if p.Role != domain.RolePatient {
			t.Fatalf("non-patient in list: %+v", p)
		}
		if p.PasswordHash != "" {
			t.Fatalf("password hash leaked for %s", p.Username)
		}
	}
}

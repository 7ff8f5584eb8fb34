// Package seed loads the fixed demo fixture set into whatever repositories
// the configured storage driver provides. Passwords are bcrypt-hashed at
// seed time; plaintext never reaches a repository.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
)

type seedUser struct {
	id             int64
	username       string
	password       string
	role           string
	name           string
	membershipType string
}

var seedUsers = []seedUser{
	{1, "patient1", "password123", domain.RolePatient, "John Doe", "Premium"},
	{2, "patient2", "password123", domain.RolePatient, "Jane Smith", "Standard"},
	{3, "doctor1", "doctor123", domain.RoleDoctor, "Dr. Sarah Johnson", "Premium"},
	{4, "patient3", "password123", domain.RolePatient, "Bob Wilson", "Free"},
}

type seedLog struct {
	patientID       int64
	daysAgo         int
	coughSeverity   int
	breathingIssues bool
	chestPain       bool
}

var seedLogs = []seedLog{
	{1, 6, 3, true, false},
	{1, 5, 2, false, false},
	{1, 4, 4, true, true},
	{1, 3, 3, true, false},
	{1, 2, 2, false, false},
	{1, 1, 1, false, false},
	{2, 2, 5, true, true},
	{2, 1, 4, true, false},
	{4, 3, 2, false, false},
}

// Users inserts the fixture users, skipping any username that already exists
// so re-running against a persistent store is safe.
func Users(ctx context.Context, repo ports.UserRepository) error {
	for _, su := range seedUsers {
		if _, err := repo.FindByUsername(ctx, su.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed users: lookup %s: %w", su.username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed users: hash password for %s: %w", su.username, err)
		}

		user := &domain.User{
			ID:             su.id,
			Username:       su.username,
			PasswordHash:   string(hash),
			Role:           su.role,
			Name:           su.name,
			MembershipType: su.membershipType,
		}
		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("seed users: create %s: %w", su.username, err)
		}
	}
	return nil
}

// HealthLogs inserts the sample symptom history for patients that have no
// logs yet.
func HealthLogs(ctx context.Context, repo ports.HealthLogRepository) error {
	skip := make(map[int64]bool)
	checked := make(map[int64]bool)
	for _, sl := range seedLogs {
		if !checked[sl.patientID] {
			existing, err := repo.ListByPatient(ctx, sl.patientID)
			if err != nil {
				return fmt.Errorf("seed logs: list patient %d: %w", sl.patientID, err)
			}
			checked[sl.patientID] = true
			skip[sl.patientID] = len(existing) > 0
		}
		if skip[sl.patientID] {
			continue
		}

		log := &domain.HealthLog{
			PatientID:       sl.patientID,
			Timestamp:       time.Now().UTC().AddDate(0, 0, -sl.daysAgo),
			CoughSeverity:   sl.coughSeverity,
			BreathingIssues: sl.breathingIssues,
			ChestPain:       sl.chestPain,
		}
		if _, err := repo.Create(ctx, log); err != nil {
			return fmt.Errorf("seed logs: create for patient %d: %w", sl.patientID, err)
		}
	}
	return nil
}

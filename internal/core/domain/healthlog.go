package domain

import (
	"errors"
	"fmt"
	"time"
)

// Cough severity is self-reported on a fixed 1–5 scale.
const (
	CoughSeverityMin = 1
	CoughSeverityMax = 5
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrValidation         = errors.New("validation failed")
	ErrLogNotFound        = errors.New("health log not found")
)

// HealthLog is a single patient-reported symptom entry.
type HealthLog struct {
	ID              int64     `json:"id" bson:"id"`
	PatientID       int64     `json:"patient_id" bson:"patient_id"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
	CoughSeverity   int       `json:"cough_severity" bson:"cough_severity"`
	BreathingIssues bool      `json:"breathing_issues" bson:"breathing_issues"`
	ChestPain       bool      `json:"chest_pain" bson:"chest_pain"`
}

// ValidateCoughSeverity checks the declared 1–5 range.
func ValidateCoughSeverity(v int) error {
	if v < CoughSeverityMin || v > CoughSeverityMax {
		return fmt.Errorf("%w: cough_severity must be between %d and %d",
			ErrValidation, CoughSeverityMin, CoughSeverityMax)
	}
	return nil
}

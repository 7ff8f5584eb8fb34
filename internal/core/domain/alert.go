package domain

import "time"

// EmergencyAlert records a patient-raised emergency. Delivery to medical
// personnel is out of scope; alerts are persisted for audit only.
type EmergencyAlert struct {
	PatientID int64     `json:"patient_id" bson:"patient_id"`
	RaisedAt  time.Time `json:"raised_at" bson:"raised_at"`
	Message   string    `json:"message,omitempty" bson:"message,omitempty"`
}

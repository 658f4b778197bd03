package domain

import "time"

// InjuryStatus tracks recovery of a logged injury. Transitions are freely
// reassignable in either direction; there is no forward-only enforcement.
type InjuryStatus string

const (
	InjuryActive     InjuryStatus = "Active"
	InjuryRecovering InjuryStatus = "Recovering"
	InjuryRecovered  InjuryStatus = "Recovered"
)

// InjuryLog is a dated injury record for a client.
type InjuryLog struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"clientId"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      InjuryStatus `json:"status"`
}

// MeasurementLog is a dated body-measurement snapshot. All measurements are
// optional; the trainer records whatever was taken that session.
type MeasurementLog struct {
	ID       string   `json:"id"`
	ClientID string   `json:"clientId"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Weight   *float64 `json:"weight,omitempty"` // kg
	Height   *float64 `json:"height,omitempty"` // cm
	Chest    *float64 `json:"chest,omitempty"`
	Waist    *float64 `json:"waist,omitempty"`
	Hips     *float64 `json:"hips,omitempty"`
	Arms     *float64 `json:"arms,omitempty"`
	Thighs   *float64 `json:"thighs,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// TrainerNote is a free-form timestamped note a trainer keeps on a client.
type TrainerNote struct {
	ID       string    `json:"id"`
	ClientID string    `json:"clientId"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

// Progress is a weight check-in snapshot for a client; listed newest first.
type Progress struct {
	ID       string    `json:"id"`
	ClientID string    `json:"clientId"`
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"`
	Notes    string    `json:"notes,omitempty"`
}

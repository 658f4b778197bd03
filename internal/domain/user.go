package domain

import "time"

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// User represents a dashboard account (a Trainer, or a gym Admin who
// manages trainer accounts). Clients never log in; they reach their data
// through the portal key instead.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"` // Should be unique
	PasswordHash string    `json:"-"`        // Never expose this via JSON
	Role         Role      `json:"role"`
	GymID        string    `json:"gymId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TrainerProfile is the contact card shown to clients in their portal.
// One profile per deployment; updated from the trainer settings page.
type TrainerProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

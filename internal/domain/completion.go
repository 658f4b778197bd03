package domain

// PlanType distinguishes which kind of plan a completion belongs to.
type PlanType string

const (
	PlanTypeWorkout PlanType = "workout"
	PlanTypeDiet    PlanType = "diet"
)

// ItemCompletion records that a client marked one exercise or meal done on
// one calendar day. The logical key is (ClientID, PlanID, Type, Date,
// ItemID); the store upserts on it, so toggling never accumulates records.
// Date is a local-day string, "YYYY-MM-DD".
type ItemCompletion struct {
	ID        string   `json:"id"`
	ClientID  string   `json:"clientId"`
	PlanID    string   `json:"planId"`
	Type      PlanType `json:"type"`
	Date      string   `json:"date"`
	ItemID    string   `json:"itemId"`
	Completed bool     `json:"completed"`
}

// Key returns the composite upsert key for this completion.
func (c ItemCompletion) Key() CompletionKey {
	return CompletionKey{
		ClientID: c.ClientID,
		PlanID:   c.PlanID,
		Type:     c.Type,
		Date:     c.Date,
		ItemID:   c.ItemID,
	}
}

// CompletionKey is the composite logical key of an ItemCompletion.
type CompletionKey struct {
	ClientID string
	PlanID   string
	Type     PlanType
	Date     string
	ItemID   string
}

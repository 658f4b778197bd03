package domain

// Goal is the client's primary training objective.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
	GoalEndurance   Goal = "endurance"
	GoalFlexibility Goal = "flexibility"
)

// FitnessLevel describes the client's experience level.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Client is a person managed by a trainer. The PortalKey is an opaque
// token granting read access to this client's portal view without a login;
// it is generated server-side and never accepted from request bodies.
type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Age          int          `json:"age"`
	Weight       float64      `json:"weight"` // kg
	Height       float64      `json:"height"` // cm
	Goal         Goal         `json:"goal"`
	FitnessLevel FitnessLevel `json:"fitnessLevel"`
	Notes        string       `json:"notes,omitempty"`
	PortalKey    string       `json:"portalKey"`
}

// GoalLabels maps goal values to display names.
var GoalLabels = map[Goal]string{
	GoalWeightLoss:  "Weight Loss",
	GoalMuscleGain:  "Muscle Gain",
	GoalMaintenance: "Maintenance",
	GoalEndurance:   "Endurance",
	GoalFlexibility: "Flexibility",
}

// FitnessLevelLabels maps fitness levels to display names.
var FitnessLevelLabels = map[FitnessLevel]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
}

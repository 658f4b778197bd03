package domain

// Exercise is a single scheduled exercise within a workout day. The ID is
// an opaque identifier used by completion tracking; copying a day to other
// days assigns fresh IDs so completion state never bleeds between days.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Notes       string `json:"notes,omitempty"`
}

// DayWorkout is one calendar day of a workout plan. When IsRestDay is set,
// Exercises is ignored by consumers.
type DayWorkout struct {
	Day       int        `json:"day"`
	IsRestDay bool       `json:"isRestDay"`
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes,omitempty"`
}

// WorkoutPlan covers exactly one calendar month for one client. Days is
// dense and 1-indexed: len(Days) == days in (Month, Year) and
// Days[i].Day == i+1.
type WorkoutPlan struct {
	ID       string       `json:"id"`
	ClientID string       `json:"clientId"`
	Name     string       `json:"name"`
	Month    int          `json:"month"` // 1-12
	Year     int          `json:"year"`
	Days     []DayWorkout `json:"days"`
}

// MealType is one of the five daily meal slots.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealSnackMorning   MealType = "snack_morning"
	MealLunch          MealType = "lunch"
	MealSnackAfternoon MealType = "snack_afternoon"
	MealDinner         MealType = "dinner"
)

// MealTypeLabels maps meal slots to display names.
var MealTypeLabels = map[MealType]string{
	MealBreakfast:      "Breakfast",
	MealSnackMorning:   "Morning Snack",
	MealLunch:          "Lunch",
	MealSnackAfternoon: "Afternoon Snack",
	MealDinner:         "Dinner",
}

// Meal is a single scheduled meal within a diet day.
type Meal struct {
	ID          string   `json:"id"`
	Type        MealType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fat         int      `json:"fat"`
}

// DayDiet is one calendar day of a diet plan. WaterIntake is in liters.
type DayDiet struct {
	Day         int     `json:"day"`
	Meals       []Meal  `json:"meals"`
	WaterIntake float64 `json:"waterIntake"`
	Notes       string  `json:"notes,omitempty"`
}

// DietPlan covers exactly one calendar month for one client, with the same
// dense 1-indexed Days invariant as WorkoutPlan.
type DietPlan struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"clientId"`
	Name           string    `json:"name"`
	Month          int       `json:"month"` // 1-12
	Year           int       `json:"year"`
	TargetCalories int       `json:"targetCalories"`
	Days           []DayDiet `json:"days"`
}

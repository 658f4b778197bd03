// Package memory implements the store interfaces on top of plain maps.
// This is the development/demo backend the app ships with: nothing is
// durable and everything is lost on restart. A single mutex serializes all
// mutations, which gives the same last-write-wins behavior callers would
// see from a single-threaded event loop.
package memory

import (
	"sync"

	"fitpro/trainer-app/internal/domain"

	"github.com/google/uuid"
)

// DB holds every entity collection behind one mutex. The per-entity stores
// all share the same DB handle, the way repositories share a database
// connection. Insertion order of each collection is tracked explicitly so
// listings are deterministic ("first matching plan wins" must not depend on
// map iteration order).
type DB struct {
	mu sync.Mutex

	users         map[string]domain.User
	usernameIndex map[string]string // username -> user id

	clients        map[string]domain.Client
	clientOrder    []string
	portalKeyIndex map[string]string // portal key -> client id

	workoutPlans     map[string]domain.WorkoutPlan
	workoutPlanOrder []string

	dietPlans     map[string]domain.DietPlan
	dietPlanOrder []string

	completions   map[string]domain.ItemCompletion
	completionIdx map[domain.CompletionKey]string // composite key -> record id

	injuries    map[string]domain.InjuryLog
	injuryOrder []string

	measurements     map[string]domain.MeasurementLog
	measurementOrder []string

	notes     map[string]domain.TrainerNote
	noteOrder []string

	progress      map[string]domain.Progress
	progressOrder []string

	resources     map[string]domain.ClientResource
	resourceOrder []string

	profile *domain.TrainerProfile
}

// NewDB creates an empty in-memory database.
func NewDB() *DB {
	return &DB{
		users:         make(map[string]domain.User),
		usernameIndex: make(map[string]string),

		clients:        make(map[string]domain.Client),
		portalKeyIndex: make(map[string]string),

		workoutPlans: make(map[string]domain.WorkoutPlan),
		dietPlans:    make(map[string]domain.DietPlan),

		completions:   make(map[string]domain.ItemCompletion),
		completionIdx: make(map[domain.CompletionKey]string),

		injuries:     make(map[string]domain.InjuryLog),
		measurements: make(map[string]domain.MeasurementLog),
		notes:        make(map[string]domain.TrainerNote),
		progress:     make(map[string]domain.Progress),
		resources:    make(map[string]domain.ClientResource),
	}
}

func newID() string {
	return uuid.NewString()
}

// removeID drops the first occurrence of id from an order slice.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

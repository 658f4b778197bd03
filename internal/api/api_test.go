package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"
	"fitpro/trainer-app/internal/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "api-test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	db := memory.NewDB()
	clientStore := memory.NewClientStore(db)
	workoutStore := memory.NewWorkoutPlanStore(db)
	dietStore := memory.NewDietPlanStore(db)
	completionStore := memory.NewCompletionStore(db)
	injuryStore := memory.NewInjuryStore(db)
	measurementStore := memory.NewMeasurementStore(db)
	noteStore := memory.NewNoteStore(db)
	progressStore := memory.NewProgressStore(db)
	resourceStore := memory.NewResourceStore(db)
	profileStore := memory.NewProfileStore(db)

	authService := service.NewAuthService(memory.NewUserStore(db), testSecret, time.Hour)
	clientService := service.NewClientService(clientStore)
	planService := service.NewPlanService(clientStore, workoutStore, dietStore)
	completionService := service.NewCompletionService(completionStore, workoutStore, dietStore)
	healthService := service.NewHealthService(clientStore, injuryStore, measurementStore, noteStore, progressStore)
	resourceService := service.NewResourceService(resourceStore, nil)
	portalService := service.NewPortalService(
		clientStore, workoutStore, dietStore,
		completionService, injuryStore, measurementStore,
		resourceService, profileStore,
	)

	router := gin.New()
	SetupRoutes(
		router, testSecret,
		authService, clientService, planService, completionService,
		portalService, healthService, resourceService, service.NewShareService(),
		profileStore,
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func loginTrainer(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{
		Username: "coach", Password: "super-secret-pw", Role: domain.RoleTrainer,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/login", "", LoginRequest{
		Username: "coach", Password: "super-secret-pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[LoginResponse](t, w).Token
}

func createClient(t *testing.T, router *gin.Engine, token string) domain.Client {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/clients", token, CreateClientRequest{
		Name: "Ana", Email: "ana@example.com", Phone: "+15550001111",
		Age: 28, Weight: 70, Height: 170,
		Goal: domain.GoalWeightLoss, FitnessLevel: domain.LevelBeginner,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[domain.Client](t, w)
}

func TestPing(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/clients", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter()

	// Password too short.
	w := doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{
		Username: "coach", Password: "short", Role: domain.RoleTrainer,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate username conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{
		Username: "coach", Password: "super-secret-pw", Role: domain.RoleTrainer,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{
		Username: "coach", Password: "super-secret-pw", Role: domain.RoleTrainer,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClientCRUDFlow(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)

	client := createClient(t, router, token)
	require.NotEmpty(t, client.ID)
	require.NotEmpty(t, client.PortalKey)

	w := doJSON(t, router, http.MethodGet, "/api/clients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Client](t, w), 1)

	notes := "Training for a half marathon"
	w = doJSON(t, router, http.MethodPatch, "/api/clients/"+client.ID, token, map[string]any{"notes": notes})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, notes, decode[domain.Client](t, w).Notes)

	w = doJSON(t, router, http.MethodDelete, "/api/clients/"+client.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/clients/"+client.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanAndPortalFlow(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)
	client := createClient(t, router, token)

	now := time.Now()
	w := doJSON(t, router, http.MethodPost, "/api/workout-plans", token, CreateWorkoutPlanRequest{
		ClientID: client.ID, Name: "Base building",
		Month: int(now.Month()), Year: now.Year(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	plan := decode[domain.WorkoutPlan](t, w)
	require.NotEmpty(t, plan.Days)
	itemID := "ex-manual-1"

	// The portal resolves with the freshly created plan in place.
	w = doJSON(t, router, http.MethodGet, "/api/portal/"+client.PortalKey, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	snapshot := decode[service.PortalSnapshot](t, w)
	require.NotNil(t, snapshot.CurrentWorkoutPlan)
	assert.Equal(t, plan.ID, snapshot.CurrentWorkoutPlan.ID)

	// A portal visitor checks an item off without any JWT.
	completed := true
	w = doJSON(t, router, http.MethodPost, "/api/portal/"+client.PortalKey+"/completions", "", ToggleCompletionRequest{
		PlanID: plan.ID, Type: domain.PlanTypeWorkout, ItemID: itemID, Completed: &completed,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	completion := decode[domain.ItemCompletion](t, w)
	assert.Equal(t, client.ID, completion.ClientID)
	assert.True(t, completion.Completed)

	// The trainer sees it on the dashboard listing for today.
	w = doJSON(t, router, http.MethodGet, "/api/clients/"+client.ID+"/completions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]domain.ItemCompletion](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, itemID, listed[0].ItemID)

	// Unknown tokens resolve to nothing.
	w = doJSON(t, router, http.MethodGet, "/api/portal/bogus", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCopyDayEndpoint(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)
	client := createClient(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/api/workout-plans", token, CreateWorkoutPlanRequest{
		ClientID: client.ID, Name: "February", Month: 2, Year: 2025,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	plan := decode[domain.WorkoutPlan](t, w)

	w = doJSON(t, router, http.MethodPost, "/api/workout-plans/"+plan.ID+"/copy-day", token, CopyDayRequest{
		SourceDay: 1, TargetDays: []int{2, 3},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// A source day outside the month is a client error.
	w = doJSON(t, router, http.MethodPost, "/api/workout-plans/"+plan.ID+"/copy-day", token, CopyDayRequest{
		SourceDay: 30, TargetDays: []int{1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthRecordEndpoints(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)
	client := createClient(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/api/clients/"+client.ID+"/injuries", token, CreateInjuryRequest{
		Date: "2025-03-01", Title: "Shoulder strain",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	injury := decode[domain.InjuryLog](t, w)
	assert.Equal(t, domain.InjuryActive, injury.Status)

	status := domain.InjuryRecovered
	w = doJSON(t, router, http.MethodPatch, "/api/injuries/"+injury.ID, token, UpdateInjuryRequest{Status: &status})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.InjuryRecovered, decode[domain.InjuryLog](t, w).Status)

	w = doJSON(t, router, http.MethodPost, "/api/clients/"+client.ID+"/notes", token, CreateNoteRequest{
		Content: "Ease back into pressing",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/clients/"+client.ID+"/notes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.TrainerNote](t, w), 1)

	w = doJSON(t, router, http.MethodDelete, "/api/injuries/"+injury.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodDelete, "/api/injuries/"+injury.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrainerProfileAndShare(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/trainer/profile", token, SaveProfileRequest{
		Name: "Coach Vera", Email: "vera@example.com", Phone: "+15550002222",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/trainer/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Coach Vera", decode[domain.TrainerProfile](t, w).Name)

	w = doJSON(t, router, http.MethodPost, "/api/share/whatsapp", token, WhatsAppShareRequest{
		Phone: "+1 555 000 1111", Message: "New plan is up!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[WhatsAppShareResponse](t, w).URL, "wa.me/15550001111")

	w = doJSON(t, router, http.MethodPost, "/api/share/whatsapp", token, WhatsAppShareRequest{
		Phone: "---", Message: "hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGymUsersRequiresAdminRole(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/gyms/gym-1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin of the gym can list its accounts.
	w = doJSON(t, router, http.MethodPost, "/api/register", "", RegisterRequest{
		Username: "owner", Password: "super-secret-pw", Role: domain.RoleAdmin, GymID: "gym-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/login", "", LoginRequest{Username: "owner", Password: "super-secret-pw"})
	require.Equal(t, http.StatusOK, w.Code)
	adminToken := decode[LoginResponse](t, w).Token

	w = doJSON(t, router, http.MethodGet, "/api/gyms/gym-1/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]UserResponse](t, w), 1)
}

func TestResourceEndpoints(t *testing.T) {
	router := newTestRouter()
	token := loginTrainer(t, router)
	client := createClient(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/api/clients/"+client.ID+"/resources", token, CreateResourceRequest{
		Title: "Warmup video", Type: domain.ResourceLink, URL: "https://example.com/warmup",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resource := decode[domain.ClientResource](t, w)

	w = doJSON(t, router, http.MethodGet, "/api/clients/"+client.ID+"/resources", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.ClientResource](t, w), 1)

	// Upload URLs are unavailable without object storage configured.
	w = doJSON(t, router, http.MethodPost, "/api/resources/upload-url", token, UploadURLRequest{
		ClientID: client.ID, FileName: "plan.pdf", ContentType: "application/pdf",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/resources/"+resource.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

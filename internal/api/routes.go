package api

import (
	"net/http"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/service"
	"fitpro/trainer-app/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full route surface on the given engine.
//
// Everything under /api except register, login and the portal routes sits
// behind JWT auth. The portal is authenticated by its share token alone.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	clientService service.ClientService,
	planService service.PlanService,
	completionService service.CompletionService,
	portalService service.PortalService,
	healthService service.HealthService,
	resourceService service.ResourceService,
	shareService service.ShareService,
	profileStore store.ProfileStore,
) {
	authHandler := NewAuthHandler(authService)
	clientHandler := NewClientHandler(clientService)
	planHandler := NewPlanHandler(planService)
	portalHandler := NewPortalHandler(portalService, completionService)
	healthHandler := NewHealthHandler(healthService)
	resourceHandler := NewResourceHandler(resourceService)
	trainerHandler := NewTrainerHandler(profileStore, shareService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Client portal, reachable with the share token only.
		api.GET("/portal/:token", portalHandler.GetPortal)
		api.POST("/portal/:token/completions", portalHandler.ToggleCompletion)
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := c.Get(ContextUserRoleKey)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
		})

		clientGroup := protected.Group("/clients")
		{
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PATCH("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)

			clientGroup.GET("/:id/completions", portalHandler.ListCompletions)

			clientGroup.GET("/:id/injuries", healthHandler.ListInjuries)
			clientGroup.POST("/:id/injuries", healthHandler.CreateInjury)
			clientGroup.GET("/:id/measurements", healthHandler.ListMeasurements)
			clientGroup.POST("/:id/measurements", healthHandler.CreateMeasurement)
			clientGroup.GET("/:id/notes", healthHandler.ListNotes)
			clientGroup.POST("/:id/notes", healthHandler.CreateNote)
			clientGroup.GET("/:id/progress", healthHandler.ListProgress)
			clientGroup.POST("/:id/progress", healthHandler.CreateProgress)
			clientGroup.GET("/:id/resources", resourceHandler.ListResources)
			clientGroup.POST("/:id/resources", resourceHandler.CreateResource)
		}

		workoutGroup := protected.Group("/workout-plans")
		{
			workoutGroup.GET("", planHandler.ListWorkoutPlans)
			workoutGroup.POST("", planHandler.CreateWorkoutPlan)
			workoutGroup.GET("/:id", planHandler.GetWorkoutPlan)
			workoutGroup.PATCH("/:id", planHandler.UpdateWorkoutPlan)
			workoutGroup.DELETE("/:id", planHandler.DeleteWorkoutPlan)
			workoutGroup.POST("/:id/copy-day", planHandler.CopyWorkoutDay)
		}

		dietGroup := protected.Group("/diet-plans")
		{
			dietGroup.GET("", planHandler.ListDietPlans)
			dietGroup.POST("", planHandler.CreateDietPlan)
			dietGroup.GET("/:id", planHandler.GetDietPlan)
			dietGroup.PATCH("/:id", planHandler.UpdateDietPlan)
			dietGroup.DELETE("/:id", planHandler.DeleteDietPlan)
			dietGroup.POST("/:id/copy-day", planHandler.CopyDietDay)
		}

		// Record mutations addressed by the record's own id.
		protected.PATCH("/injuries/:id", healthHandler.UpdateInjury)
		protected.DELETE("/injuries/:id", healthHandler.DeleteInjury)
		protected.DELETE("/measurements/:id", healthHandler.DeleteMeasurement)
		protected.DELETE("/notes/:id", healthHandler.DeleteNote)
		protected.DELETE("/resources/:id", resourceHandler.DeleteResource)
		protected.POST("/resources/upload-url", resourceHandler.GenerateUploadURL)

		protected.GET("/trainer/profile", trainerHandler.GetProfile)
		protected.POST("/trainer/profile", trainerHandler.SaveProfile)
		protected.POST("/share/whatsapp", trainerHandler.ShareWhatsApp)

		protected.GET("/gyms/:gymId/users", RoleMiddleware(domain.RoleAdmin), authHandler.GymUsers)
	}
}

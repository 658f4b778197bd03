package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitpro/trainer-app/internal/api"
	"fitpro/trainer-app/internal/config"
	"fitpro/trainer-app/internal/service"
	"fitpro/trainer-app/internal/storage"
	"fitpro/trainer-app/internal/store/memory"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Infoln("Starting trainer app server...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	log.Infoln("Configuration loaded.")

	// All state lives in memory; a restart wipes it.
	db := memory.NewDB()

	userStore := memory.NewUserStore(db)
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

	if cfg.Demo.Seed {
		log.Infof("Seeding %d demo clients...", cfg.Demo.SeedClients)
		if err := memory.Seed(context.Background(), db, cfg.Demo.SeedClients); err != nil {
			log.Fatalf("could not seed demo data: %v", err)
		}
	}

	// Object storage is optional. Without it, link resources still work and
	// file resources are rejected by the service layer.
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		log.Infoln("Initializing file storage...")
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("could not initialize S3 storage: %v", err)
		}
	} else {
		log.Warnln("S3 storage not configured; file resources are disabled.")
	}

	authService := service.NewAuthService(userStore, cfg.JWT.Secret, cfg.JWT.Expiration)
	clientService := service.NewClientService(clientStore)
	planService := service.NewPlanService(clientStore, workoutStore, dietStore)
	completionService := service.NewCompletionService(completionStore, workoutStore, dietStore)
	healthService := service.NewHealthService(clientStore, injuryStore, measurementStore, noteStore, progressStore)
	resourceService := service.NewResourceService(resourceStore, fileStorage)
	shareService := service.NewShareService()
	portalService := service.NewPortalService(
		clientStore, workoutStore, dietStore,
		completionService, injuryStore, measurementStore,
		resourceService, profileStore,
	)

	router := gin.Default()

	api.SetupRoutes(
		router, cfg.JWT.Secret,
		authService, clientService, planService, completionService,
		portalService, healthService, resourceService, shareService,
		profileStore,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Infoln("Server exiting.")
}

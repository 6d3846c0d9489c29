// File: careconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careconnect/config"
	"careconnect/cron"
	"careconnect/database"
	appointmentRepo "careconnect/database/repository/appointment"
	availabilityRepo "careconnect/database/repository/availability"
	patientRepo "careconnect/database/repository/patient"
	providerRepo "careconnect/database/repository/provider"
	"careconnect/handlers"
	"careconnect/middleware"
	"careconnect/routes"
	"careconnect/services/notification"
	"careconnect/services/reminder"
	"careconnect/services/scheduling"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	if err := availRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Providers:          provRepo,
		Availability:       availRepo,
		Appointments:       apptRepo,
		TZOffsetMinutes:    config.AppConfig.TZOffsetMinutes,
		DefaultSlotMinutes: config.AppConfig.SlotMinutesDefault,
	}

	notificationService, err := notification.NewDefaultNotificationService(patRepo, provRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := &reminder.Scheduler{
		Appointments: apptRepo,
		HorizonHours: config.AppConfig.ReminderHorizonHours,
	}
	reminderDispatcher := &reminder.Dispatcher{
		Scheduler: reminderScheduler,
		Providers: provRepo,
		Marker:    &reminder.RedisSentMarker{Client: utils.GetReminderCacheClient()},
		Queue:     cron.NewAsynqEnqueuer(),
	}

	// Background workers: delivery worker first, then the cron that feeds it.
	cron.InitReminderWorker(notificationService)
	reminderCron := cron.StartReminderCron(reminderDispatcher)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetReminderCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		schedulingEngine,
		availRepo,
		apptRepo,
		provRepo,
		reminderScheduler,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	reminderCron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// File: bandroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bandroom/config"
	workers "bandroom/cron"
	"bandroom/database"
	reservationRepo "bandroom/database/repository/reservation"
	"bandroom/handlers"
	"bandroom/middleware"
	"bandroom/routes"
	"bandroom/services/notification"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	loc, err := time.LoadLocation(config.AppConfig.FacilityTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid FACILITY_TIMEZONE %q: %v", config.AppConfig.FacilityTimezone, err)
	}

	// Facility booking policy, passed explicitly to the engine.
	policy := scheduling.Policy{
		StartHour:          config.AppConfig.BookingStartHour,
		EndHour:            config.AppConfig.BookingEndHour,
		GranularityMinutes: config.AppConfig.SlotGranularityMin,
		AllowedDurations:   config.AppConfig.AllowedDurationHours(),
		MaxMembers:         config.AppConfig.MaxMembers,
		Location:           loc,
		LockTimeout:        time.Duration(config.AppConfig.DateLockTimeoutMS) * time.Millisecond,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo()
	if err := reservationRepo.EnsureIndexes(resRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to create reservation indexes: %v", err)
	}

	// services.
	notifSink := notification.NewAsynqSink(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer notifSink.Close()

	scheduler := scheduling.NewScheduler(resRepo, policy, scheduling.RealClock{}, notifSink, logger)

	cacheTTL := time.Duration(config.AppConfig.AvailabilityTTLSec) * time.Second
	reservationHandler := handlers.NewReservationHandler(scheduler, resRepo, utils.GetCacheClient(), cacheTTL, logger)

	routes.RegisterReservationRoutes(router, reservationHandler)

	// background workers.
	workers.InitNotificationWorker()
	workers.StartExpirySweep(resRepo, loc)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}

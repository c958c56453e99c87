package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bandroom/config"
	reservationRepo "bandroom/database/repository/reservation"
	"bandroom/services/notification"
	"bandroom/utils"

	"github.com/hibiken/asynq"
	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async notification worker in background.
func InitNotificationWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeReservationCreated, handleReservationCreatedTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReservationCreatedTask delivers a new-booking announcement to staff.
// Mail/calendar delivery is handled by the external staff tooling; the worker
// records the event so a failed enqueue is visible in the logs.
func handleReservationCreatedTask(ctx context.Context, t *asynq.Task) error {
	var payload notification.ReservationCreatedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	utils.GetLogger().Info("staff notified of new reservation",
		zap.String("reservationID", payload.ReservationID),
		zap.String("date", payload.Date),
		zap.String("startTime", payload.StartTime),
		zap.Int("durationHours", payload.DurationHours),
		zap.String("bandName", payload.BandName),
	)
	return nil
}

// StartExpirySweep cancels pending reservations whose date has passed. Runs
// shortly after midnight in the facility timezone.
func StartExpirySweep(repo reservationRepo.ReservationRepository, loc *time.Location) {
	c := robfig.New(robfig.WithLocation(loc))

	_, err := c.AddFunc("30 0 * * *", func() {
		logger := utils.GetLogger()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := time.Now().In(loc).Format("2006-01-02")
		n, err := repo.CancelPastPending(ctx, today)
		if err != nil {
			logger.Error("expiry sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("expired stale pending reservations", zap.Int64("count", n))
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule expiry sweep: %v", err)
	}
	c.Start()
}

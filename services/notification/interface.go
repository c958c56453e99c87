package notification

import (
	"context"

	"bandroom/models"

	"github.com/hibiken/asynq"
)

// Sink receives reservation events. Delivery is best-effort: the booking
// protocol never waits on it and never fails because of it.
type Sink interface {
	ReservationCreated(ctx context.Context, res models.Reservation) error
}

// AsynqSink enqueues reservation events on the notification queue; the worker
// in cron/ delivers them to staff.
type AsynqSink struct {
	client *asynq.Client
}

// NewAsynqSink constructs a Sink backed by the given Redis queue.
func NewAsynqSink(redisOpt asynq.RedisClientOpt) *AsynqSink {
	return &AsynqSink{client: asynq.NewClient(redisOpt)}
}

func (s *AsynqSink) ReservationCreated(ctx context.Context, res models.Reservation) error {
	task, err := NewReservationCreatedTask(res)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	return err
}

// Close releases the underlying queue connection.
func (s *AsynqSink) Close() error {
	return s.client.Close()
}

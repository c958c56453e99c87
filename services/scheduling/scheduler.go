package scheduling

import (
	"context"
	"errors"
	"time"

	reservationRepo "bandroom/database/repository/reservation"
	"bandroom/models"
	"bandroom/services/notification"

	"go.uber.org/zap"
)

// Scheduler orchestrates reservation creation and availability queries. The
// store is an injected capability so tests run it against the in-memory repo.
type Scheduler struct {
	Repo     reservationRepo.ReservationRepository
	Policy   Policy
	Clock    Clock
	Notifier notification.Sink // optional; nil disables staff notification
	Logger   *zap.Logger

	locks *dateLocks
}

// NewScheduler wires a scheduling engine.
func NewScheduler(repo reservationRepo.ReservationRepository, policy Policy, clock Clock, sink notification.Sink, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		Repo:     repo,
		Policy:   policy,
		Clock:    clock,
		Notifier: sink,
		Logger:   logger,
		locks:    newDateLocks(),
	}
}

// Availability returns the slot grid for the given date. It reads a snapshot
// of the day's blocking reservations and computes the grid lock-free.
func (s *Scheduler) Availability(ctx context.Context, date string) ([]models.TimeSlot, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, s.Policy.Location); err != nil {
		return nil, &ValidationError{Violations: []Violation{
			{Field: "date", Message: "not a valid date (expected YYYY-MM-DD)"},
		}}
	}

	blocking, err := s.Repo.ListBlocking(ctx, date)
	if err != nil {
		return nil, &TransientError{Op: "list reservations", Err: err}
	}
	return GridBuilder{Policy: s.Policy}.Build(blocking), nil
}

// Create runs the creation protocol. Steps two and three (conflict check and
// insert) hold the date's write lock, so among concurrent attempts with
// mutually overlapping intervals at most one commits; the rest see the
// winner's row and fail with ErrSlotUnavailable.
func (s *Scheduler) Create(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	normalized, err := (Validator{Policy: s.Policy, Clock: s.Clock}).Validate(req)
	if err != nil {
		return nil, err
	}

	if err := s.locks.acquire(ctx, normalized.Date, s.Policy.LockTimeout); err != nil {
		return nil, &TransientError{Op: "acquire date lock", Err: err}
	}
	defer s.locks.release(normalized.Date)

	blocking, err := s.Repo.ListBlocking(ctx, normalized.Date)
	if err != nil {
		return nil, &TransientError{Op: "list reservations", Err: err}
	}

	startMin, _ := ParseTimeOfDay(normalized.StartTime)
	candidate := NewInterval(startMin, normalized.DurationHours)
	if HasConflict(candidate, blocking) {
		return nil, ErrSlotUnavailable
	}

	normalized.Status = models.StatusPending
	id, err := s.Repo.Insert(ctx, &normalized)
	if errors.Is(err, reservationRepo.ErrIntervalConflict) {
		// The store rechecks the invariant on write; treat its refusal the
		// same as losing the conflict check.
		return nil, ErrSlotUnavailable
	}
	if err != nil {
		return nil, &TransientError{Op: "insert reservation", Err: err}
	}
	normalized.ID = id

	s.Logger.Info("reservation created",
		zap.String("id", id),
		zap.String("date", normalized.Date),
		zap.String("startTime", normalized.StartTime),
		zap.Int("durationHours", normalized.DurationHours),
	)

	// Best-effort staff notification; never awaited, never fails the booking.
	if s.Notifier != nil {
		go s.notifyCreated(normalized)
	}

	return &normalized, nil
}

func (s *Scheduler) notifyCreated(res models.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Notifier.ReservationCreated(ctx, res); err != nil {
		s.Logger.Warn("staff notification failed",
			zap.String("reservationID", res.ID), zap.Error(err))
	}
}

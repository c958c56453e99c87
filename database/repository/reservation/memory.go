// File: database/repository/reservation/memory.go
package reservationRepo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bandroom/models"
)

// InMemoryReservationRepo is a map-backed ReservationRepository. The scheduling
// engine takes the store as an injected capability, so tests substitute this
// implementation for Mongo.
type InMemoryReservationRepo struct {
	mu     sync.RWMutex
	byID   map[string]*models.Reservation
	byDate map[string][]string // date -> reservation IDs, insertion order
}

// NewInMemoryReservationRepo constructs an empty in-memory repository.
func NewInMemoryReservationRepo() *InMemoryReservationRepo {
	return &InMemoryReservationRepo{
		byID:   make(map[string]*models.Reservation),
		byDate: make(map[string][]string),
	}
}

func (r *InMemoryReservationRepo) ListBlocking(ctx context.Context, date string) ([]models.Reservation, error) {
	return r.listDate(ctx, date, true)
}

func (r *InMemoryReservationRepo) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return r.listDate(ctx, date, false)
}

func (r *InMemoryReservationRepo) listDate(ctx context.Context, date string, blockingOnly bool) ([]models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Reservation
	for _, id := range r.byDate[date] {
		res := r.byID[id]
		if blockingOnly && !res.Status.Blocking() {
			continue
		}
		out = append(out, *res)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *InMemoryReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s not found", id)
	}
	cp := *res
	return &cp, nil
}

// Insert enforces the no-overlap invariant at the store boundary: a blocking
// reservation whose interval overlaps an existing blocking reservation on the
// same date is rejected with ErrIntervalConflict, so a regressed scheduler
// guard fails here instead of corrupting the day.
func (r *InMemoryReservationRepo) Insert(ctx context.Context, res *models.Reservation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if res.Status.Blocking() {
		if start, end, ok := occupiedSpan(res); ok {
			for _, id := range r.byDate[res.Date] {
				existing := r.byID[id]
				if !existing.Status.Blocking() {
					continue
				}
				exStart, exEnd, ok := occupiedSpan(existing)
				if !ok {
					continue
				}
				// Half-open intervals: touching endpoints coexist.
				if start < exEnd && end > exStart {
					return "", ErrIntervalConflict
				}
			}
		}
	}

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	cp := *res
	r.byID[cp.ID] = &cp
	r.byDate[cp.Date] = append(r.byDate[cp.Date], cp.ID)
	return cp.ID, nil
}

// occupiedSpan reports the minutes-since-midnight span a reservation occupies.
// Rows with an unparseable start time carry no span and are skipped.
func occupiedSpan(res *models.Reservation) (start, end int, ok bool) {
	t, err := time.Parse("15:04", res.StartTime)
	if err != nil {
		return 0, 0, false
	}
	start = t.Hour()*60 + t.Minute()
	return start, start + res.DurationHours*60, true
}

func (r *InMemoryReservationRepo) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus, noteAppend string) (*models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s not found", id)
	}
	res.Status = status
	res.UpdatedAt = time.Now()
	if noteAppend != "" {
		if res.Notes != "" {
			res.Notes = strings.TrimRight(res.Notes, "\n") + "\n"
		}
		res.Notes += noteAppend
	}
	cp := *res
	return &cp, nil
}

func (r *InMemoryReservationRepo) CancelPastPending(ctx context.Context, today string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, res := range r.byID {
		if res.Status == models.StatusPending && res.Date < today {
			res.Status = models.StatusCancelled
			res.UpdatedAt = time.Now()
			n++
		}
	}
	return n, nil
}

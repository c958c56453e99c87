package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	reservationRepo "bandroom/database/repository/reservation"
	"bandroom/models"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReservationHandler serves the booking endpoints.
type ReservationHandler struct {
	Svc      scheduling.Service
	Repo     reservationRepo.ReservationRepository
	Cache    *redis.Client // nil disables grid caching
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// NewReservationHandler constructs the handler.
func NewReservationHandler(svc scheduling.Service, repo reservationRepo.ReservationRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		Svc:      svc,
		Repo:     repo,
		Cache:    cache,
		CacheTTL: cacheTTL,
		Logger:   logger,
	}
}

// CreateReservationHandler handles POST /api/reservations.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "message": err.Error()})
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		var ve *scheduling.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "validation failed",
				"violations": ve.Violations,
			})
		case errors.Is(err, scheduling.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "requested time is no longer available"})
		case scheduling.IsTransient(err):
			h.Logger.Error("transient failure creating reservation", zap.Error(err))
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporary failure, please retry"})
		default:
			h.Logger.Error("failed to create reservation", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create reservation", err.Error())
		}
		return
	}

	h.invalidateGrid(res.Date)
	c.JSON(http.StatusCreated, gin.H{"id": res.ID, "status": res.Status})
}

// UpdateReservationStatusHandler handles PATCH /api/reservations/:id/status.
// Transitions are opaque writes owned by the staff workflow; no state-machine
// validation happens here beyond rejecting unknown or pending targets.
func (h *ReservationHandler) UpdateReservationStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "message": err.Error()})
		return
	}
	if !req.Status.Valid() || req.Status == models.StatusPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved, rejected or cancelled"})
		return
	}

	noteAppend := ""
	if req.Status == models.StatusCancelled && req.Note != "" {
		noteAppend = "cancelled: " + req.Note
	}

	res, err := h.Repo.UpdateStatus(c.Request.Context(), id, req.Status, noteAppend)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found", "message": err.Error()})
		return
	}

	h.invalidateGrid(res.Date)
	c.JSON(http.StatusOK, res)
}

// ListReservationsHandler handles GET /api/reservations?date= for staff.
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date query parameter"})
		return
	}

	reservations, err := h.Repo.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("failed to list reservations", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporary failure, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "reservations": reservations})
}

// invalidateGrid drops the cached availability grid for a date after a write.
func (h *ReservationHandler) invalidateGrid(date string) {
	if h.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.Cache.Del(ctx, utils.AvailabilityCacheKey(date)).Err(); err != nil {
		h.Logger.Warn("failed to invalidate availability cache", zap.String("date", date), zap.Error(err))
	}
}

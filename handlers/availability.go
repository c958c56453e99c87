package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bandroom/models"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAvailabilityHandler handles GET /api/availability/:date. The grid is a
// pure function of the day's blocking reservations, so it is served from a
// short-TTL cache; every write to the date drops the cached copy.
func (h *ReservationHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Param("date")

	if h.Cache != nil {
		cached, err := h.Cache.Get(c.Request.Context(), utils.AvailabilityCacheKey(date)).Result()
		if err == nil {
			var resp models.AvailabilityResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	slots, err := h.Svc.Availability(c.Request.Context(), date)
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "violations": ve.Violations})
			return
		}
		h.Logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporary failure, please retry"})
		return
	}

	resp := models.AvailabilityResponse{Date: date, Slots: slots}

	if h.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := h.Cache.Set(c.Request.Context(), utils.AvailabilityCacheKey(date), data, h.CacheTTL).Err(); err != nil {
				h.Logger.Warn("failed to cache availability grid", zap.String("date", date), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

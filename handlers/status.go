// File: handlers/status.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DayStatus returns the slot grid and reservations for one room-day.
// GET /api/rooms/:roomID/days/:date
func (h *HandlerBundle) DayStatus(c *gin.Context) {
	status, err := h.Reservations.DayStatus(c.Request.Context(), c.Param("roomID"), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// MonthStatus returns per-day booking counts for one room-month.
// GET /api/rooms/:roomID/months/:month
func (h *HandlerBundle) MonthStatus(c *gin.Context) {
	status, err := h.Reservations.MonthStatus(c.Request.Context(), c.Param("roomID"), c.Param("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// StartTimeOptions lists bookable start times for a duration on one room-day.
// GET /api/rooms/:roomID/days/:date/options?duration=60
func (h *HandlerBundle) StartTimeOptions(c *gin.Context) {
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
		return
	}

	options, svcErr := h.Reservations.StartTimeOptions(c.Request.Context(), c.Param("roomID"), c.Param("date"), duration)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}
	if options == nil {
		options = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// File: handlers/reservation.go
package handlers

import (
	"net/http"

	"roombook/middleware"
	"roombook/models"

	"github.com/gin-gonic/gin"
)

func actorFrom(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
	}
	return actor, ok
}

func (h *HandlerBundle) CreateReservation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in models.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Reservations.Create(c.Request.Context(), actor, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *HandlerBundle) GetReservation(c *gin.Context) {
	res, err := h.Reservations.Get(c.Request.Context(), c.Param("reservationID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *HandlerBundle) UpdateReservation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var in models.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	res, err := h.Reservations.Update(c.Request.Context(), actor, c.Param("reservationID"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *HandlerBundle) CancelReservation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	if err := h.Reservations.Cancel(c.Request.Context(), actor, c.Param("reservationID")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *HandlerBundle) ListMyReservations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	page, size := pageParams(c)
	rows, total, err := h.Reservations.ListMine(c.Request.Context(), actor, c.Query("q"), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows, "total": total, "page": page, "size": size})
}

func (h *HandlerBundle) ListRoomReservations(c *gin.Context) {
	page, size := pageParams(c)
	rows, total, err := h.Reservations.ListByRoom(c.Request.Context(), c.Param("roomID"), c.Query("q"), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows, "total": total, "page": page, "size": size})
}

func (h *HandlerBundle) ListAllReservations(c *gin.Context) {
	page, size := pageParams(c)
	rows, total, err := h.Reservations.ListAll(c.Request.Context(), c.Query("q"), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": rows, "total": total, "page": page, "size": size})
}

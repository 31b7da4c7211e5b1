// File: handlers/room.go
package handlers

import (
	"net/http"
	"strconv"

	"roombook/models"

	"github.com/gin-gonic/gin"
)

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

// ListRooms returns the room catalogue. Non-admin callers only ever see
// active rooms; admins may pass ?all=true to include retired ones.
func (h *HandlerBundle) ListRooms(c *gin.Context) {
	page, size := pageParams(c)
	activeOnly := c.Query("all") != "true"

	rooms, total, err := h.Rooms.List(c.Request.Context(), c.Query("q"), activeOnly, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "total": total, "page": page, "size": size})
}

func (h *HandlerBundle) GetRoom(c *gin.Context) {
	room, err := h.Rooms.Get(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *HandlerBundle) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Rooms.Create(c.Request.Context(), room)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HandlerBundle) UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	room.ID = c.Param("roomID")
	updated, err := h.Rooms.Update(c.Request.Context(), room)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *HandlerBundle) DeleteRoom(c *gin.Context) {
	if err := h.Rooms.Delete(c.Request.Context(), c.Param("roomID")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *HandlerBundle) SetRoomException(c *gin.Context) {
	var exc models.OperatingException
	if err := c.ShouldBindJSON(&exc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	exc.RoomID = c.Param("roomID")
	if err := h.Rooms.SetException(c.Request.Context(), exc); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, exc)
}

func (h *HandlerBundle) ListRoomExceptions(c *gin.Context) {
	excs, err := h.Rooms.ListExceptions(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exceptions": excs})
}

func (h *HandlerBundle) DeleteRoomException(c *gin.Context) {
	err := h.Rooms.RemoveException(c.Request.Context(), c.Param("roomID"), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

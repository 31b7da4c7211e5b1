// File: handlers/bundle.go
package handlers

import (
	reservationSvc "roombook/services/reservation"
	roomSvc "roombook/services/room"
)

// HandlerBundle groups all endpoint handlers around their services.
type HandlerBundle struct {
	Rooms        roomSvc.RoomService
	Reservations reservationSvc.ReservationService
}

func NewHandlerBundle(rooms roomSvc.RoomService, reservations reservationSvc.ReservationService) *HandlerBundle {
	return &HandlerBundle{Rooms: rooms, Reservations: reservations}
}

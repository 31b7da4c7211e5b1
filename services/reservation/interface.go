// File: services/reservation/interface.go
package reservation

import (
	"context"

	"roombook/models"
)

// ReservationService owns the booking lifecycle and the availability views
// built on top of it.
type ReservationService interface {
	DayStatus(ctx context.Context, roomID, date string) (*models.DayStatus, error)
	MonthStatus(ctx context.Context, roomID, month string) (*models.MonthStatus, error)
	StartTimeOptions(ctx context.Context, roomID, date string, durationMinutes int) ([]string, error)

	Create(ctx context.Context, actor models.Actor, in models.ReservationInput) (*models.Reservation, error)
	Update(ctx context.Context, actor models.Actor, id string, in models.ReservationInput) (*models.Reservation, error)
	Cancel(ctx context.Context, actor models.Actor, id string) error

	Get(ctx context.Context, id string) (*models.Reservation, error)
	ListMine(ctx context.Context, actor models.Actor, q string, page, size int) ([]models.Reservation, int64, error)
	ListByRoom(ctx context.Context, roomID, q string, page, size int) ([]models.Reservation, int64, error)
	ListAll(ctx context.Context, q string, page, size int) ([]models.Reservation, int64, error)
}

// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"time"

	"roombook/database"
	"roombook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the persistence contract for reservations and
// their append-only audit trail. InsertIfNoConflict and UpdateIfNoConflict
// re-run the overlap check inside a transaction and are the final arbiter
// against concurrent double-booking.
type ReservationRepository interface {
	FindByID(ctx context.Context, id string) (*models.Reservation, error)
	FindByRoomAndDate(ctx context.Context, roomID, date string) ([]models.Reservation, error)
	FindByRoomAndMonth(ctx context.Context, roomID string, year int, month time.Month) ([]models.Reservation, error)

	InsertIfNoConflict(ctx context.Context, res models.Reservation, bufferMinutes int) error
	UpdateIfNoConflict(ctx context.Context, res models.Reservation, bufferMinutes int) error
	Cancel(ctx context.Context, id string) error

	ListByUser(ctx context.Context, userID, q string, page, size int) ([]models.Reservation, int64, error)
	ListByRoom(ctx context.Context, roomID, q string, page, size int) ([]models.Reservation, int64, error)
	ListAll(ctx context.Context, q string, page, size int) ([]models.Reservation, int64, error)

	InsertAudit(ctx context.Context, audit models.ReservationAudit) error
}

type mongoReservationRepo struct {
	reservations *mongo.Collection
	audits       *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.DB()
	return &mongoReservationRepo{
		reservations: db.Collection("reservations"),
		audits:       db.Collection("reservation_audits"),
	}
}

// File: database/repository/room/interface.go
package roomRepo

import (
	"context"

	"roombook/database"
	"roombook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository is the persistence contract for rooms, their weekly
// operating hours (embedded) and per-date operating exceptions.
type RoomRepository interface {
	Create(ctx context.Context, room models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context, q string, activeOnly bool, page, size int) ([]models.Room, int64, error)
	Update(ctx context.Context, room models.Room) error
	Delete(ctx context.Context, id string) error

	GetExceptionForDate(ctx context.Context, roomID, date string) (*models.OperatingException, error)
	ListExceptions(ctx context.Context, roomID string) ([]models.OperatingException, error)
	UpsertException(ctx context.Context, exc models.OperatingException) error
	DeleteException(ctx context.Context, roomID, date string) error
}

type mongoRoomRepo struct {
	rooms      *mongo.Collection
	exceptions *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.DB()
	return &mongoRoomRepo{
		rooms:      db.Collection("rooms"),
		exceptions: db.Collection("room_operating_exceptions"),
	}
}

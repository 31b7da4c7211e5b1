// File: services/room/interface.go
package room

import (
	"context"

	"roombook/models"
)

// RoomService owns room catalogue management: CRUD, operating hours
// validation, and per-date operating exceptions.
type RoomService interface {
	Create(ctx context.Context, room models.Room) (*models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context, q string, activeOnly bool, page, size int) ([]models.Room, int64, error)
	Update(ctx context.Context, room models.Room) (*models.Room, error)
	Delete(ctx context.Context, id string) error

	SetException(ctx context.Context, exc models.OperatingException) error
	ListExceptions(ctx context.Context, roomID string) ([]models.OperatingException, error)
	RemoveException(ctx context.Context, roomID, date string) error
}

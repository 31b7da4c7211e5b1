// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"roombook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoReservationRepo) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := r.reservations.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

// FindByRoomAndDate returns the booked reservations for one room on one
// calendar day, ordered by start time. Cancelled rows are filtered out here
// so callers only see slots that actually block.
func (r *mongoReservationRepo) FindByRoomAndDate(ctx context.Context, roomID, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"roomId": roomID,
		"date":   date,
		"status": models.ReservationBooked,
	}
	cursor, err := r.reservations.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}

// FindByRoomAndMonth loads the whole month in a single range query; the
// caller buckets per day.
func (r *mongoReservationRepo) FindByRoomAndMonth(ctx context.Context, roomID string, year int, month time.Month) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	to := next.Format("2006-01-02")

	filter := bson.M{
		"roomId": roomID,
		"status": models.ReservationBooked,
		"date":   bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := r.reservations.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding month reservations: %w", err)
	}
	return out, nil
}

func (r *mongoReservationRepo) ListByUser(ctx context.Context, userID, q string, page, size int) ([]models.Reservation, int64, error) {
	filter := bson.M{"userId": userID}
	return r.list(ctx, filter, q, page, size)
}

func (r *mongoReservationRepo) ListByRoom(ctx context.Context, roomID, q string, page, size int) ([]models.Reservation, int64, error) {
	filter := bson.M{"roomId": roomID}
	return r.list(ctx, filter, q, page, size)
}

func (r *mongoReservationRepo) ListAll(ctx context.Context, q string, page, size int) ([]models.Reservation, int64, error) {
	return r.list(ctx, bson.M{}, q, page, size)
}

func (r *mongoReservationRepo) list(ctx context.Context, filter bson.M, q string, page, size int) ([]models.Reservation, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}

	total, err := r.reservations.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cursor, err := r.reservations.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, total, nil
}

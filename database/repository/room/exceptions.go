// File: database/repository/room/exceptions.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"roombook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRoomRepo) GetExceptionForDate(ctx context.Context, roomID, date string) (*models.OperatingException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exc models.OperatingException
	err := r.exceptions.FindOne(ctx, bson.M{"roomId": roomID, "date": date}).Decode(&exc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch operating exception: %w", err)
	}
	return &exc, nil
}

func (r *mongoRoomRepo) ListExceptions(ctx context.Context, roomID string) ([]models.OperatingException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.exceptions.Find(ctx, bson.M{"roomId": roomID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch operating exceptions: %w", err)
	}
	defer cursor.Close(ctx)

	var excs []models.OperatingException
	if err := cursor.All(ctx, &excs); err != nil {
		return nil, fmt.Errorf("error decoding operating exceptions: %w", err)
	}
	return excs, nil
}

func (r *mongoRoomRepo) UpsertException(ctx context.Context, exc models.OperatingException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"roomId": exc.RoomID, "date": exc.Date}
	_, err := r.exceptions.ReplaceOne(ctx, filter, exc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert operating exception: %w", err)
	}
	return nil
}

func (r *mongoRoomRepo) DeleteException(ctx context.Context, roomID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.exceptions.DeleteOne(ctx, bson.M{"roomId": roomID, "date": date})
	if err != nil {
		return fmt.Errorf("failed to delete operating exception: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// File: database/repository/reservation/transaction.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"roombook/models"
	"roombook/services/engine"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// conflictFilter matches any booked reservation on the same room and date
// whose buffered interval would overlap the candidate's buffered interval.
// Both sides expand by the buffer, so the window widens by 2x buffer:
// existing.start < candEnd+2b && existing.end > candStart-2b.
func conflictFilter(res models.Reservation, bufferMinutes int) bson.M {
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}
	widen := 2 * bufferMinutes

	filter := bson.M{
		"roomId": res.RoomID,
		"date":   res.Date,
		"status": models.ReservationBooked,
		"start":  bson.M{"$lt": res.End + widen},
		"end":    bson.M{"$gt": res.Start - widen},
	}
	if res.ID != "" {
		filter["id"] = bson.M{"$ne": res.ID}
	}
	return filter
}

// InsertIfNoConflict inserts the reservation inside a transaction that first
// re-checks for overlap. The service layer's validation is a fast pre-check;
// this is the authoritative gate against racing writers.
func (r *mongoReservationRepo) InsertIfNoConflict(ctx context.Context, res models.Reservation, bufferMinutes int) error {
	return r.withConflictGuard(ctx, res, bufferMinutes, func(sc mongo.SessionContext) error {
		if _, err := r.reservations.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	})
}

// UpdateIfNoConflict rewrites a reservation's interval and title inside the
// same guard, skipping the reservation itself during the overlap check.
func (r *mongoReservationRepo) UpdateIfNoConflict(ctx context.Context, res models.Reservation, bufferMinutes int) error {
	return r.withConflictGuard(ctx, res, bufferMinutes, func(sc mongo.SessionContext) error {
		update := bson.M{"$set": bson.M{
			"date":      res.Date,
			"start":     res.Start,
			"end":       res.End,
			"title":     res.Title,
			"updatedAt": res.UpdatedAt,
		}}
		out, err := r.reservations.UpdateOne(sc, bson.M{"id": res.ID, "status": models.ReservationBooked}, update)
		if err != nil {
			return fmt.Errorf("update reservation failed: %w", err)
		}
		if out.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	})
}

func (r *mongoReservationRepo) withConflictGuard(ctx context.Context, res models.Reservation, bufferMinutes int, write func(mongo.SessionContext) error) error {
	client := r.reservations.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var blocking models.Reservation
		err := r.reservations.FindOne(sc, conflictFilter(res, bufferMinutes)).Decode(&blocking)
		if err == nil {
			return engine.NewConflictError(blocking.ID)
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		return write(sc)
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}

// Cancel flips a booked reservation to CANCELLED. The row itself is never
// deleted; cancelled reservations stay behind as the audit trail's subject.
func (r *mongoReservationRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.ReservationCancelled,
		"updatedAt": time.Now().UTC(),
	}}
	out, err := r.reservations.UpdateOne(ctx, bson.M{"id": id, "status": models.ReservationBooked}, update)
	if err != nil {
		return fmt.Errorf("cancel reservation failed: %w", err)
	}
	if out.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoReservationRepo) InsertAudit(ctx context.Context, audit models.ReservationAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.audits.InsertOne(ctx, audit); err != nil {
		return fmt.Errorf("insert reservation audit failed: %w", err)
	}
	return nil
}

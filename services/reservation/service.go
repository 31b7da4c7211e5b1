// File: services/reservation/service.go
package reservation

import (
	"context"
	"fmt"
	"time"

	reservationRepo "roombook/database/repository/reservation"
	roomRepo "roombook/database/repository/room"
	"roombook/models"
	"roombook/services/engine"
	"roombook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// RoomLocker serializes writers per room. *utils.RoomLock satisfies it.
type RoomLocker interface {
	Acquire(ctx context.Context, roomID string) (string, error)
	Release(ctx context.Context, roomID, token string) error
}

type DefaultReservationService struct {
	Rooms        roomRepo.RoomRepository
	Reservations reservationRepo.ReservationRepository
	Lock         RoomLocker

	// Now is swappable for tests; every date-window decision goes through it.
	Now func() time.Time
}

func NewDefaultReservationService(rooms roomRepo.RoomRepository, reservations reservationRepo.ReservationRepository, lock RoomLocker) ReservationService {
	return &DefaultReservationService{
		Rooms:        rooms,
		Reservations: reservations,
		Lock:         lock,
		Now:          time.Now,
	}
}

func (s *DefaultReservationService) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room == nil {
		return nil, engine.NewPolicyError(engine.CodeNotFound, "room not found")
	}
	return room, nil
}

// dayContext resolves everything needed to reason about one room-day: the
// parsed date, the effective operating window and the day's booked rows.
func (s *DefaultReservationService) dayContext(ctx context.Context, room *models.Room, date string) (time.Time, engine.DayHours, []models.Reservation, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, engine.DayHours{}, nil,
			engine.NewPolicyError(engine.CodeValidation, "date must be formatted as YYYY-MM-DD")
	}

	exc, err := s.Rooms.GetExceptionForDate(ctx, room.ID, date)
	if err != nil {
		return time.Time{}, engine.DayHours{}, nil, fmt.Errorf("failed to fetch operating exception: %w", err)
	}
	hours := engine.ResolveDayHours(*room, exc, day)

	rows, err := s.Reservations.FindByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		return time.Time{}, engine.DayHours{}, nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return day, hours, rows, nil
}

func (s *DefaultReservationService) DayStatus(ctx context.Context, roomID, date string) (*models.DayStatus, error) {
	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	_, hours, rows, err := s.dayContext(ctx, room, date)
	if err != nil {
		return nil, err
	}
	status := engine.DayStatusFor(*room, date, hours, rows)
	return &status, nil
}

func (s *DefaultReservationService) MonthStatus(ctx context.Context, roomID, month string) (*models.MonthStatus, error) {
	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, engine.NewPolicyError(engine.CodeValidation, "month must be formatted as YYYY-MM")
	}

	rows, err := s.Reservations.FindByRoomAndMonth(ctx, room.ID, first.Year(), first.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month reservations: %w", err)
	}
	return &models.MonthStatus{
		RoomID: room.ID,
		Month:  month,
		Days:   engine.MonthCounts(first.Year(), first.Month(), rows),
	}, nil
}

func (s *DefaultReservationService) StartTimeOptions(ctx context.Context, roomID, date string, durationMinutes int) ([]string, error) {
	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if durationMinutes < room.MinMinutes || durationMinutes > room.MaxMinutes {
		return nil, engine.NewPolicyError(engine.CodeDurationOutOfRange,
			fmt.Sprintf("duration must be between %d and %d minutes", room.MinMinutes, room.MaxMinutes))
	}
	if room.SlotMinutes > 0 && durationMinutes%room.SlotMinutes != 0 {
		// options are offered only for durations the create path would take
		return nil, engine.NewPolicyError(engine.CodeSlotMisaligned,
			fmt.Sprintf("duration must be a multiple of %d minutes", room.SlotMinutes))
	}
	_, hours, rows, err := s.dayContext(ctx, room, date)
	if err != nil {
		return nil, err
	}
	return engine.StartTimeOptions(*room, hours, rows, durationMinutes), nil
}

// checkBookableDate enforces the room's date window policy: no past days,
// nothing beyond the booking horizon (admins are exempt from the horizon),
// and nothing outside the room's available date range.
func (s *DefaultReservationService) checkBookableDate(room *models.Room, actor models.Actor, date string) error {
	today := s.Now().UTC().Format(dateLayout)
	if date < today {
		return engine.NewPolicyError(engine.CodeDateNotBookable, "date is in the past")
	}
	if !actor.Admin && room.BookingOpenDaysAhead > 0 {
		horizon := s.Now().UTC().AddDate(0, 0, room.BookingOpenDaysAhead).Format(dateLayout)
		if date > horizon {
			return engine.NewPolicyError(engine.CodeDateNotBookable,
				fmt.Sprintf("bookings open %d days ahead at most", room.BookingOpenDaysAhead))
		}
	}
	if room.AvailableStartDate != "" && date < room.AvailableStartDate {
		return engine.NewPolicyError(engine.CodeDateNotBookable, "date is before the room's availability window")
	}
	if room.AvailableEndDate != "" && date > room.AvailableEndDate {
		return engine.NewPolicyError(engine.CodeDateNotBookable, "date is past the room's availability window")
	}
	return nil
}

// validateRequest runs every policy gate for a proposed booking interval and
// returns the resolved start minute. excludeID skips the reservation being
// rescheduled during the conflict check.
func (s *DefaultReservationService) validateRequest(ctx context.Context, room *models.Room, actor models.Actor, in models.ReservationInput, excludeID string) (int, error) {
	if !room.Active {
		return 0, engine.NewPolicyError(engine.CodeValidation, "room is not accepting reservations")
	}
	start, err := engine.ToMinutes(in.StartTime)
	if err != nil {
		return 0, engine.NewPolicyError(engine.CodeValidation, "startTime must be formatted as HH:MM")
	}
	if err := s.checkBookableDate(room, actor, in.Date); err != nil {
		return 0, err
	}

	_, hours, rows, err := s.dayContext(ctx, room, in.Date)
	if err != nil {
		return 0, err
	}
	if err := engine.ValidateAlignedReservation(*room, hours, rows, start, in.DurationMinutes, excludeID); err != nil {
		return 0, err
	}
	return start, nil
}

func (s *DefaultReservationService) audit(ctx context.Context, reservationID, from, to, actorID string) {
	err := s.Reservations.InsertAudit(ctx, models.ReservationAudit{
		ID:            uuid.New().String(),
		ReservationID: reservationID,
		FromStatus:    from,
		ToStatus:      to,
		ActorID:       actorID,
		At:            s.Now().UTC(),
	})
	if err != nil {
		// the booking itself already committed; the trail entry is best effort
		utils.Logger.Error("failed to insert reservation audit",
			zap.String("reservationId", reservationID), zap.Error(err))
	}
}

func (s *DefaultReservationService) Create(ctx context.Context, actor models.Actor, in models.ReservationInput) (*models.Reservation, error) {
	room, err := s.getRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	// fast pre-check outside the lock so obviously bad requests never queue
	start, err := s.validateRequest(ctx, room, actor, in, "")
	if err != nil {
		return nil, err
	}

	token, err := s.Lock.Acquire(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire room lock: %w", err)
	}
	defer s.Lock.Release(context.Background(), room.ID, token)

	// re-run under the lock against fresh rows
	start, err = s.validateRequest(ctx, room, actor, in, "")
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	res := models.Reservation{
		ID:        uuid.New().String(),
		RoomID:    room.ID,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Title:     in.Title,
		Status:    models.ReservationBooked,
		Date:      in.Date,
		Start:     start,
		End:       start + in.DurationMinutes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Reservations.InsertIfNoConflict(ctx, res, room.BufferMinutes); err != nil {
		return nil, err
	}
	s.audit(ctx, res.ID, "", models.ReservationBooked, actor.ID)

	utils.Logger.Info("reservation created",
		zap.String("reservationId", res.ID),
		zap.String("roomId", room.ID),
		zap.String("date", res.Date),
		zap.String("userId", actor.ID))
	return &res, nil
}

func (s *DefaultReservationService) Update(ctx context.Context, actor models.Actor, id string, in models.ReservationInput) (*models.Reservation, error) {
	if !actor.Admin {
		return nil, engine.NewPolicyError(engine.CodeUnauthorized, "only administrators may modify reservations")
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != models.ReservationBooked {
		return nil, engine.NewPolicyError(engine.CodeValidation, "cancelled reservations cannot be modified")
	}
	if in.RoomID != "" && in.RoomID != existing.RoomID {
		return nil, engine.NewPolicyError(engine.CodeValidation, "reservations cannot move between rooms")
	}
	room, err := s.getRoom(ctx, existing.RoomID)
	if err != nil {
		return nil, err
	}

	token, err := s.Lock.Acquire(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire room lock: %w", err)
	}
	defer s.Lock.Release(context.Background(), room.ID, token)

	start, err := s.validateRequest(ctx, room, actor, in, existing.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = in.Title
	updated.Date = in.Date
	updated.Start = start
	updated.End = start + in.DurationMinutes
	updated.UpdatedAt = s.Now().UTC()

	if err := s.Reservations.UpdateIfNoConflict(ctx, updated, room.BufferMinutes); err != nil {
		return nil, err
	}
	s.audit(ctx, updated.ID, models.ReservationBooked, models.ReservationBooked, actor.ID)

	utils.Logger.Info("reservation updated",
		zap.String("reservationId", updated.ID), zap.String("actorId", actor.ID))
	return &updated, nil
}

func (s *DefaultReservationService) Cancel(ctx context.Context, actor models.Actor, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Admin && existing.UserID != actor.ID {
		return engine.NewPolicyError(engine.CodeUnauthorized, "only the owner or an administrator may cancel")
	}
	if existing.Status != models.ReservationBooked {
		return engine.NewPolicyError(engine.CodeValidation, "reservation is already cancelled")
	}

	if err := s.Reservations.Cancel(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	s.audit(ctx, id, models.ReservationBooked, models.ReservationCancelled, actor.ID)

	utils.Logger.Info("reservation cancelled",
		zap.String("reservationId", id), zap.String("actorId", actor.ID))
	return nil
}

func (s *DefaultReservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	res, err := s.Reservations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	if res == nil {
		return nil, engine.NewPolicyError(engine.CodeNotFound, "reservation not found")
	}
	return res, nil
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size
}

func (s *DefaultReservationService) ListMine(ctx context.Context, actor models.Actor, q string, page, size int) ([]models.Reservation, int64, error) {
	page, size = clampPage(page, size)
	return s.Reservations.ListByUser(ctx, actor.ID, q, page, size)
}

func (s *DefaultReservationService) ListByRoom(ctx context.Context, roomID, q string, page, size int) ([]models.Reservation, int64, error) {
	if _, err := s.getRoom(ctx, roomID); err != nil {
		return nil, 0, err
	}
	page, size = clampPage(page, size)
	return s.Reservations.ListByRoom(ctx, roomID, q, page, size)
}

func (s *DefaultReservationService) ListAll(ctx context.Context, q string, page, size int) ([]models.Reservation, int64, error) {
	page, size = clampPage(page, size)
	return s.Reservations.ListAll(ctx, q, page, size)
}

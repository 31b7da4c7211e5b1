// File: services/room/service.go
package room

import (
	"context"
	"fmt"
	"time"

	roomRepo "roombook/database/repository/room"
	"roombook/models"
	"roombook/services/engine"
	"roombook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

func NewDefaultRoomService(repo roomRepo.RoomRepository) RoomService {
	return &DefaultRoomService{Repo: repo}
}

func validateRoom(room *models.Room) error {
	if room.Name == "" {
		return engine.NewPolicyError(engine.CodeValidation, "room name is required")
	}
	if room.Capacity < 1 {
		return engine.NewPolicyError(engine.CodeValidation, "capacity must be at least 1")
	}
	if room.SlotMinutes <= 0 {
		return engine.NewPolicyError(engine.CodeValidation, "slotMinutes must be positive")
	}
	if room.MinMinutes < 1 {
		return engine.NewPolicyError(engine.CodeValidation, "minMinutes must be at least 1")
	}
	if room.MaxMinutes < room.MinMinutes {
		return engine.NewPolicyError(engine.CodeValidation, "maxMinutes must not be below minMinutes")
	}
	if !models.AllowedBufferMinutes[room.BufferMinutes] {
		return engine.NewPolicyError(engine.CodeValidation,
			fmt.Sprintf("bufferMinutes %d is not allowed, expected one of 0, 10, 30, 60", room.BufferMinutes))
	}
	if room.BookingOpenDaysAhead < 1 {
		return engine.NewPolicyError(engine.CodeValidation, "bookingOpenDaysAhead must be at least 1")
	}
	if room.AvailableStartDate != "" && room.AvailableEndDate != "" && room.AvailableEndDate < room.AvailableStartDate {
		return engine.NewPolicyError(engine.CodeValidation, "availableEndDate is before availableStartDate")
	}
	if err := engine.ValidateOperatingHours(room.OperatingHours); err != nil {
		return err
	}
	room.OperatingHours = engine.FillMissingHours(room.OperatingHours)
	return nil
}

func (s *DefaultRoomService) Create(ctx context.Context, room models.Room) (*models.Room, error) {
	if err := validateRoom(&room); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room.ID = uuid.New().String()
	room.CreatedAt = now
	room.UpdatedAt = now

	if err := s.Repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	utils.Logger.Info("room created", zap.String("roomId", room.ID), zap.String("name", room.Name))
	return &room, nil
}

func (s *DefaultRoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room == nil {
		return nil, engine.NewPolicyError(engine.CodeNotFound, "room not found")
	}
	return room, nil
}

func (s *DefaultRoomService) List(ctx context.Context, q string, activeOnly bool, page, size int) ([]models.Room, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	rooms, total, err := s.Repo.List(ctx, q, activeOnly, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, total, nil
}

func (s *DefaultRoomService) Update(ctx context.Context, room models.Room) (*models.Room, error) {
	existing, err := s.Get(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if err := validateRoom(&room); err != nil {
		return nil, err
	}

	room.CreatedAt = existing.CreatedAt
	room.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	utils.Logger.Info("room updated", zap.String("roomId", room.ID))
	return &room, nil
}

func (s *DefaultRoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	utils.Logger.Info("room deleted", zap.String("roomId", id))
	return nil
}

func (s *DefaultRoomService) SetException(ctx context.Context, exc models.OperatingException) error {
	if _, err := s.Get(ctx, exc.RoomID); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", exc.Date); err != nil {
		return engine.NewPolicyError(engine.CodeValidation, "exception date must be formatted as YYYY-MM-DD")
	}
	if !exc.Closed {
		open, errO := engine.ToMinutes(exc.Open)
		closeMin, errC := engine.ToMinutes(exc.Close)
		if errO != nil || errC != nil || open >= closeMin {
			return engine.NewPolicyError(engine.CodeInvalidOperatingHours, "exception hours must satisfy open < close within the day")
		}
	}
	if err := s.Repo.UpsertException(ctx, exc); err != nil {
		return fmt.Errorf("failed to save operating exception: %w", err)
	}
	utils.Logger.Info("operating exception saved",
		zap.String("roomId", exc.RoomID), zap.String("date", exc.Date), zap.Bool("closed", exc.Closed))
	return nil
}

func (s *DefaultRoomService) ListExceptions(ctx context.Context, roomID string) ([]models.OperatingException, error) {
	if _, err := s.Get(ctx, roomID); err != nil {
		return nil, err
	}
	excs, err := s.Repo.ListExceptions(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list operating exceptions: %w", err)
	}
	return excs, nil
}

func (s *DefaultRoomService) RemoveException(ctx context.Context, roomID, date string) error {
	if _, err := s.Get(ctx, roomID); err != nil {
		return err
	}
	if err := s.Repo.DeleteException(ctx, roomID, date); err != nil {
		return fmt.Errorf("failed to delete operating exception: %w", err)
	}
	return nil
}

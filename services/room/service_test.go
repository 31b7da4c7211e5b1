// File: services/room/service_test.go
package room

import (
	"context"
	"errors"
	"testing"

	"roombook/models"
	"roombook/services/engine"
	"roombook/utils"

	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

type fakeRepo struct {
	rooms      map[string]models.Room
	exceptions map[string]models.OperatingException
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rooms:      make(map[string]models.Room),
		exceptions: make(map[string]models.OperatingException),
	}
}

func (r *fakeRepo) Create(_ context.Context, room models.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *fakeRepo) List(_ context.Context, _ string, activeOnly bool, _, _ int) ([]models.Room, int64, error) {
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if activeOnly && !room.Active {
			continue
		}
		out = append(out, room)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) Update(_ context.Context, room models.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.rooms, id)
	return nil
}

func (r *fakeRepo) GetExceptionForDate(_ context.Context, roomID, date string) (*models.OperatingException, error) {
	exc, ok := r.exceptions[roomID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &exc, nil
}

func (r *fakeRepo) ListExceptions(_ context.Context, roomID string) ([]models.OperatingException, error) {
	out := make([]models.OperatingException, 0)
	for _, exc := range r.exceptions {
		if exc.RoomID == roomID {
			out = append(out, exc)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpsertException(_ context.Context, exc models.OperatingException) error {
	r.exceptions[exc.RoomID+"|"+exc.Date] = exc
	return nil
}

func (r *fakeRepo) DeleteException(_ context.Context, roomID, date string) error {
	delete(r.exceptions, roomID+"|"+date)
	return nil
}

func validRoom() models.Room {
	return models.Room{
		Name:                 "Aurora",
		Capacity:             8,
		Active:               true,
		SlotMinutes:          30,
		BufferMinutes:        10,
		MinMinutes:           30,
		MaxMinutes:           240,
		BookingOpenDaysAhead: 30,
		OperatingHours: []models.OperatingHour{
			{Dow: 1, Open: "08:00", Close: "20:00"},
		},
	}
}

func policyCode(t *testing.T, err error) string {
	t.Helper()
	var pe *engine.PolicyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected policy error, got %v", err)
	}
	return pe.Code
}

func TestCreateRoom(t *testing.T) {
	svc := NewDefaultRoomService(newFakeRepo())
	created, err := svc.Create(context.Background(), validRoom())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("created room has no id")
	}
	if len(created.OperatingHours) != 7 {
		t.Fatalf("hours padded to %d entries, want 7", len(created.OperatingHours))
	}
	// the supplied Monday entry survives, the rest come from defaults
	if created.OperatingHours[0].Open != "08:00" {
		t.Errorf("monday open = %q, want 08:00", created.OperatingHours[0].Open)
	}
	if created.OperatingHours[1].Open != "09:00" || created.OperatingHours[1].Close != "18:00" {
		t.Errorf("tuesday = %+v, want default 09:00-18:00", created.OperatingHours[1])
	}
	if !created.OperatingHours[5].Closed || !created.OperatingHours[6].Closed {
		t.Error("weekend defaults should be closed")
	}
}

func TestCreateRoomRejections(t *testing.T) {
	mutations := []struct {
		name     string
		mutate   func(*models.Room)
		wantCode string
	}{
		{"empty name", func(r *models.Room) { r.Name = "" }, engine.CodeValidation},
		{"zero capacity", func(r *models.Room) { r.Capacity = 0 }, engine.CodeValidation},
		{"bad buffer", func(r *models.Room) { r.BufferMinutes = 15 }, engine.CodeValidation},
		{"max below min", func(r *models.Room) { r.MinMinutes = 120; r.MaxMinutes = 60 }, engine.CodeValidation},
		{"zero slot", func(r *models.Room) { r.SlotMinutes = 0 }, engine.CodeValidation},
		{"zero horizon", func(r *models.Room) { r.BookingOpenDaysAhead = 0 }, engine.CodeValidation},
		{"inverted window", func(r *models.Room) {
			r.AvailableStartDate = "2026-12-01"
			r.AvailableEndDate = "2026-11-01"
		}, engine.CodeValidation},
		{"bad dow", func(r *models.Room) {
			r.OperatingHours = []models.OperatingHour{{Dow: 8, Open: "09:00", Close: "18:00"}}
		}, engine.CodeInvalidOperatingHours},
		{"open after close", func(r *models.Room) {
			r.OperatingHours = []models.OperatingHour{{Dow: 1, Open: "18:00", Close: "09:00"}}
		}, engine.CodeInvalidOperatingHours},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDefaultRoomService(newFakeRepo())
			room := validRoom()
			tt.mutate(&room)
			_, err := svc.Create(context.Background(), room)
			if got := policyCode(t, err); got != tt.wantCode {
				t.Errorf("code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestGetRoomNotFound(t *testing.T) {
	svc := NewDefaultRoomService(newFakeRepo())
	_, err := svc.Get(context.Background(), "missing")
	if got := policyCode(t, err); got != engine.CodeNotFound {
		t.Errorf("code = %q, want NOT_FOUND", got)
	}
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDefaultRoomService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRoom())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	changed := *created
	changed.Name = "Borealis"
	updated, err := svc.Update(ctx, changed)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Borealis" {
		t.Errorf("name = %q, want Borealis", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update must not rewrite createdAt")
	}
}

func TestExceptionLifecycle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDefaultRoomService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRoom())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.SetException(ctx, models.OperatingException{
		RoomID: created.ID, Date: "2026-09-01", Closed: true, Reason: "maintenance",
	})
	if err != nil {
		t.Fatalf("SetException: %v", err)
	}

	excs, err := svc.ListExceptions(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListExceptions: %v", err)
	}
	if len(excs) != 1 || excs[0].Reason != "maintenance" {
		t.Fatalf("exceptions = %+v, want one maintenance closure", excs)
	}

	if err := svc.RemoveException(ctx, created.ID, "2026-09-01"); err != nil {
		t.Fatalf("RemoveException: %v", err)
	}
	excs, _ = svc.ListExceptions(ctx, created.ID)
	if len(excs) != 0 {
		t.Errorf("exceptions remain after removal: %+v", excs)
	}
}

func TestSetExceptionRejections(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDefaultRoomService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRoom())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.SetException(ctx, models.OperatingException{RoomID: created.ID, Date: "not-a-date", Closed: true})
	if got := policyCode(t, err); got != engine.CodeValidation {
		t.Errorf("bad date: code = %q, want VALIDATION", got)
	}

	err = svc.SetException(ctx, models.OperatingException{RoomID: created.ID, Date: "2026-09-01", Open: "10:00", Close: "09:00"})
	if got := policyCode(t, err); got != engine.CodeInvalidOperatingHours {
		t.Errorf("inverted hours: code = %q, want INVALID_OPERATING_HOURS", got)
	}

	err = svc.SetException(ctx, models.OperatingException{RoomID: "missing", Date: "2026-09-01", Closed: true})
	if got := policyCode(t, err); got != engine.CodeNotFound {
		t.Errorf("missing room: code = %q, want NOT_FOUND", got)
	}
}

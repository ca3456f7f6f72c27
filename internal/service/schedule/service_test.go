package schedule

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointago/pointage-backend-go/internal/domain/schedule"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

type fakeShiftRepo struct {
	mu     sync.Mutex
	seq    int
	shifts map[string]schedule.ShiftSchedule // employeeID|weekday
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]schedule.ShiftSchedule)}
}

func shiftKey(employeeID string, weekday time.Weekday) string {
	return fmt.Sprintf("%s|%d", employeeID, weekday)
}

func (f *fakeShiftRepo) GetForWeekday(ctx context.Context, employeeID string, weekday time.Weekday) (*schedule.ShiftSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.shifts[shiftKey(employeeID, weekday)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeShiftRepo) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.ShiftSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []schedule.ShiftSchedule
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if s, ok := f.shifts[shiftKey(employeeID, wd)]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Upsert(ctx context.Context, s schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := shiftKey(s.EmployeeID, s.Weekday)
	if existing, ok := f.shifts[key]; ok {
		s.ID = existing.ID
	} else {
		f.seq++
		s.ID = fmt.Sprintf("shift-%d", f.seq)
	}
	f.shifts[key] = s
	return s, nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, employeeID string, weekday time.Weekday) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := shiftKey(employeeID, weekday)
	if _, ok := f.shifts[key]; !ok {
		return schedule.ErrShiftNotFound
	}
	delete(f.shifts, key)
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByBiometricID(ctx context.Context, biometricID string) (user.User, error) {
	return user.User{}, user.ErrUnknownBiometricID
}

func (f *fakeUserRepo) ListActiveEmployees(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

var (
	employeeActor = user.Actor{ID: "emp-1", Role: user.RoleEmploye}
	rhActor       = user.Actor{ID: "rh-1", Role: user.RoleRH}
)

func newTestService(repo *fakeShiftRepo) schedule.ShiftScheduleService {
	users := &fakeUserRepo{users: map[string]user.User{
		"emp-1": {ID: "emp-1", Role: user.RoleEmploye, IsActive: true},
	}}
	return NewShiftScheduleService(repo, users)
}

func TestShiftScheduleService_Upsert(t *testing.T) {
	svc := newTestService(newFakeShiftRepo())

	resp, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    1,
		StartsAt:   "08:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 1, resp.Weekday)
	assert.Equal(t, "08:30", resp.StartsAt)
}

func TestShiftScheduleService_Upsert_Replaces(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo)

	first, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    1,
		StartsAt:   "08:00",
	})
	require.NoError(t, err)

	second, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    1,
		StartsAt:   "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "09:00", second.StartsAt)

	stored, err := repo.GetForWeekday(context.Background(), "emp-1", time.Monday)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 9*time.Hour, stored.StartsAt)
}

func TestShiftScheduleService_Upsert_RequiresRH(t *testing.T) {
	svc := newTestService(newFakeShiftRepo())

	_, err := svc.UpsertShift(context.Background(), employeeActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    1,
		StartsAt:   "08:00",
	})
	assert.ErrorIs(t, err, user.ErrRHAccessRequired)
}

func TestShiftScheduleService_Upsert_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeShiftRepo())

	_, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "ghost",
		Weekday:    1,
		StartsAt:   "08:00",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestShiftScheduleService_Upsert_InvalidClock(t *testing.T) {
	svc := newTestService(newFakeShiftRepo())

	_, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    1,
		StartsAt:   "8h30",
	})
	assert.Error(t, err)
}

func TestShiftScheduleService_Delete(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo)

	_, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    2,
		StartsAt:   "08:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShift(context.Background(), rhActor, "emp-1", 2))

	err = svc.DeleteShift(context.Background(), rhActor, "emp-1", 2)
	assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
}

func TestShiftScheduleService_Delete_WeekdayBounds(t *testing.T) {
	svc := newTestService(newFakeShiftRepo())

	err := svc.DeleteShift(context.Background(), rhActor, "emp-1", 7)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, schedule.ErrShiftNotFound)
}

func TestShiftScheduleService_List_DefaultsToSelf(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo)

	_, err := svc.UpsertShift(context.Background(), rhActor, schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Weekday:    1,
		StartsAt:   "08:00",
	})
	require.NoError(t, err)

	resp, err := svc.ListShifts(context.Background(), employeeActor, "")
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, "08:00", resp.Shifts[0].StartsAt)
}

func TestShiftScheduleService_List_EmployeeCannotReadOthers(t *testing.T) {
	svc := newTestService(newFakeShiftRepo())

	_, err := svc.ListShifts(context.Background(), employeeActor, "emp-2")
	assert.ErrorIs(t, err, user.ErrRHAccessRequired)
}

package biometric

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/biometric"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

type fakeLogRepo struct {
	mu   sync.Mutex
	seq  int
	logs []biometric.Log
}

func (f *fakeLogRepo) Create(ctx context.Context, l biometric.Log) (biometric.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	l.ID = fmt.Sprintf("log-%d", f.seq)
	f.logs = append(f.logs, l)
	return l, nil
}

func (f *fakeLogRepo) List(ctx context.Context, employeeID string, limit int) ([]biometric.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []biometric.Log
	for _, l := range f.logs {
		if employeeID != "" && (l.EmployeeID == nil || *l.EmployeeID != employeeID) {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User // keyed by biometric id
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByBiometricID(ctx context.Context, biometricID string) (user.User, error) {
	u, ok := f.users[biometricID]
	if !ok {
		return user.User{}, user.ErrUnknownBiometricID
	}
	return u, nil
}

func (f *fakeUserRepo) ListActiveEmployees(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

// fakePuncher records the manual punch it was asked to perform.
type fakePuncher struct {
	lastActor user.Actor
	lastReq   attendance.ManualPunchRequest
	punchErr  error
}

func (f *fakePuncher) PunchIn(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakePuncher) PunchOut(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakePuncher) PunchFor(ctx context.Context, actor user.Actor, req attendance.ManualPunchRequest) (attendance.RecordResponse, error) {
	f.lastActor = actor
	f.lastReq = req
	if f.punchErr != nil {
		return attendance.RecordResponse{}, f.punchErr
	}
	status := attendance.StatusInProgress
	if req.PunchType == "out" {
		status = attendance.StatusCompleted
	}
	return attendance.RecordResponse{ID: "rec-1", EmployeeID: req.EmployeeID, Status: string(status)}, nil
}

func (f *fakePuncher) GetRecord(ctx context.Context, actor user.Actor, id string) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, attendance.ErrRecordNotFound
}

func (f *fakePuncher) ListRecords(ctx context.Context, actor user.Actor, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	return attendance.ListRecordsResponse{}, nil
}

func (f *fakePuncher) FinalizeAbsences(ctx context.Context, actor user.Actor, req attendance.FinalizeAbsencesRequest) (attendance.FinalizeAbsencesResponse, error) {
	return attendance.FinalizeAbsencesResponse{}, nil
}

func knownUsers() *fakeUserRepo {
	bio := "BIO-42"
	return &fakeUserRepo{users: map[string]user.User{
		bio: {
			ID:          "emp-1",
			FirstName:   "Alice",
			LastName:    "Martin",
			Role:        user.RoleEmploye,
			BiometricID: &bio,
			IsActive:    true,
		},
	}}
}

func entree(biometricID string) biometric.PunchEventRequest {
	return biometric.PunchEventRequest{
		BiometricID: biometricID,
		LogType:     "ENTREE",
		Timestamp:   "2024-01-15T08:05:00Z",
		DeviceID:    "portail-1",
	}
}

func TestBiometricService_ReceivePunch_Entree(t *testing.T) {
	logs := &fakeLogRepo{}
	puncher := &fakePuncher{}
	svc := NewBiometricService(logs, knownUsers(), puncher)

	resp, err := svc.ReceivePunch(context.Background(), entree("BIO-42"))
	require.NoError(t, err)

	assert.Equal(t, "log-1", resp.LogID)
	assert.Equal(t, "Alice Martin", resp.EmployeeName)
	assert.Equal(t, "rec-1", resp.RecordID)
	assert.Equal(t, string(attendance.StatusInProgress), resp.RecordStatus)

	// The punch runs as the resolved employee, not as a privileged actor.
	assert.Equal(t, user.Actor{ID: "emp-1", Role: user.RoleEmploye}, puncher.lastActor)
	assert.Equal(t, "in", puncher.lastReq.PunchType)
	assert.Equal(t, "2024-01-15T08:05:00Z", puncher.lastReq.Timestamp)

	require.Len(t, logs.logs, 1)
	assert.True(t, logs.logs[0].Matched)
	require.NotNil(t, logs.logs[0].EmployeeID)
	assert.Equal(t, "emp-1", *logs.logs[0].EmployeeID)
}

func TestBiometricService_ReceivePunch_Sortie(t *testing.T) {
	puncher := &fakePuncher{}
	svc := NewBiometricService(&fakeLogRepo{}, knownUsers(), puncher)

	req := entree("BIO-42")
	req.LogType = "SORTIE"

	resp, err := svc.ReceivePunch(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "out", puncher.lastReq.PunchType)
	assert.Equal(t, string(attendance.StatusCompleted), resp.RecordStatus)
}

func TestBiometricService_ReceivePunch_UnknownID(t *testing.T) {
	logs := &fakeLogRepo{}
	svc := NewBiometricService(logs, knownUsers(), &fakePuncher{})

	resp, err := svc.ReceivePunch(context.Background(), entree("BIO-99"))
	assert.ErrorIs(t, err, user.ErrUnknownBiometricID)

	// The event is stored unmatched before the error surfaces.
	assert.Equal(t, "log-1", resp.LogID)
	require.Len(t, logs.logs, 1)
	assert.False(t, logs.logs[0].Matched)
	assert.Nil(t, logs.logs[0].EmployeeID)
}

func TestBiometricService_ReceivePunch_LogKeptWhenPunchFails(t *testing.T) {
	logs := &fakeLogRepo{}
	puncher := &fakePuncher{punchErr: attendance.ErrAlreadyPunchedIn}
	svc := NewBiometricService(logs, knownUsers(), puncher)

	resp, err := svc.ReceivePunch(context.Background(), entree("BIO-42"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)

	assert.Equal(t, "log-1", resp.LogID)
	require.Len(t, logs.logs, 1)
	assert.True(t, logs.logs[0].Matched)
}

func TestBiometricService_ReceivePunch_InvalidPayload(t *testing.T) {
	svc := NewBiometricService(&fakeLogRepo{}, knownUsers(), &fakePuncher{})

	_, err := svc.ReceivePunch(context.Background(), biometric.PunchEventRequest{
		BiometricID: "BIO-42",
		LogType:     "BONJOUR",
		Timestamp:   "2024-01-15T08:05:00Z",
		DeviceID:    "portail-1",
	})
	assert.Error(t, err)
}

func TestBiometricService_ListLogs_EmployeeScoped(t *testing.T) {
	logs := &fakeLogRepo{}
	svc := NewBiometricService(logs, knownUsers(), &fakePuncher{})

	_, err := svc.ReceivePunch(context.Background(), entree("BIO-42"))
	require.NoError(t, err)
	_, _ = svc.ReceivePunch(context.Background(), entree("BIO-99"))

	employee := user.Actor{ID: "emp-1", Role: user.RoleEmploye}
	own, err := svc.ListLogs(context.Background(), employee, 50)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "emp-1", own[0].EmployeeID)

	rh := user.Actor{ID: "rh-1", Role: user.RoleRH}
	all, err := svc.ListLogs(context.Background(), rh, 50)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

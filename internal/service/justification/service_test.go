package justification

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/justification"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// fakeCaseRepo mirrors the store contract: unique record_id on insert,
// status-guarded Resubmit and Decide.
type fakeCaseRepo struct {
	mu    sync.Mutex
	seq   int
	cases map[string]*justification.Case
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: make(map[string]*justification.Case)}
}

func (f *fakeCaseRepo) Create(ctx context.Context, c justification.Case) (justification.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.cases {
		if existing.RecordID == c.RecordID {
			return justification.Case{}, justification.ErrAlreadyPending
		}
	}

	f.seq++
	c.ID = fmt.Sprintf("case-%d", f.seq)
	stored := c
	f.cases[c.ID] = &stored
	return c, nil
}

func (f *fakeCaseRepo) GetByID(ctx context.Context, id string) (justification.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.cases[id]
	if !ok {
		return justification.Case{}, justification.ErrCaseNotFound
	}
	return *c, nil
}

func (f *fakeCaseRepo) GetByRecordID(ctx context.Context, recordID string) (*justification.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.cases {
		if c.RecordID == recordID {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeCaseRepo) Resubmit(ctx context.Context, c justification.Case) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.cases[c.ID]
	if !ok || current.Status != justification.StatusRefusee {
		return false, nil
	}

	current.Text = c.Text
	current.AttachmentPath = c.AttachmentPath
	current.SubmittedAt = c.SubmittedAt
	current.Status = justification.StatusEnAttente
	current.DecidedBy = nil
	current.DecidedAt = nil
	return true, nil
}

func (f *fakeCaseRepo) Decide(ctx context.Context, caseID string, decision justification.Status, decidedBy string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.cases[caseID]
	if !ok || current.Status != justification.StatusEnAttente {
		return false, nil
	}

	now := time.Now()
	current.Status = decision
	current.DecidedBy = &decidedBy
	current.DecidedAt = &now
	return true, nil
}

func (f *fakeCaseRepo) List(ctx context.Context, filter justification.CaseFilter) ([]justification.Case, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []justification.Case
	for _, c := range f.cases {
		if filter.EmployeeID != "" && c.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

// fakeRecordStore serves only GetByID; the justification service never
// writes attendance rows.
type fakeRecordStore struct {
	records map[string]attendance.Record
}

func (f *fakeRecordStore) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeRecordStore) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordStore) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordStore) CompletePunchIn(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeRecordStore) CompletePunchOut(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeRecordStore) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecordStore) CreateAbsent(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return false, nil
}

type fakeFileService struct{}

func (fakeFileService) UploadJustificationAttachment(ctx context.Context, employeeID string, f io.Reader, filename string) (string, error) {
	return "justifications/" + employeeID + "/" + filename, nil
}

func (fakeFileService) DeleteFile(ctx context.Context, path string) error { return nil }

func (fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://files.test/" + path, nil
}

var (
	employeeActor = user.Actor{ID: "emp-1", Role: user.RoleEmploye}
	rhActor       = user.Actor{ID: "rh-1", Role: user.RoleRH}
	dgActor       = user.Actor{ID: "dg-1", Role: user.RoleDG}
)

func fixtureRecords() *fakeRecordStore {
	return &fakeRecordStore{records: map[string]attendance.Record{
		"rec-late": {
			ID:           "rec-late",
			EmployeeID:   "emp-1",
			Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusLate,
			DelayMinutes: 17,
		},
		"rec-absent": {
			ID:         "rec-absent",
			EmployeeID: "emp-1",
			Date:       time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusAbsent,
		},
		"rec-ontime": {
			ID:         "rec-ontime",
			EmployeeID: "emp-1",
			Date:       time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusCompleted,
			TotalHours: 8,
		},
	}}
}

func newTestService(cases *fakeCaseRepo) justification.JustificationService {
	return NewJustificationService(nil, cases, fixtureRecords(), fakeFileService{})
}

func submitLate(t *testing.T, svc justification.JustificationService) justification.CaseResponse {
	t.Helper()
	resp, err := svc.Submit(context.Background(), employeeActor, justification.SubmitRequest{
		RecordID: "rec-late",
		Text:     "Panne de transport en commun",
	})
	require.NoError(t, err)
	return resp
}

func TestJustificationService_Submit(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())

	resp := submitLate(t, svc)

	assert.Equal(t, string(justification.StatusEnAttente), resp.Status)
	assert.Equal(t, "En attente", resp.StatusLabel)
	assert.Equal(t, "rec-late", resp.RecordID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestJustificationService_Submit_NotOwner(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())

	_, err := svc.Submit(context.Background(), rhActor, justification.SubmitRequest{
		RecordID: "rec-late",
		Text:     "Panne de transport en commun",
	})
	assert.ErrorIs(t, err, justification.ErrNotOwner)
}

func TestJustificationService_Submit_NotEligible(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())

	_, err := svc.Submit(context.Background(), employeeActor, justification.SubmitRequest{
		RecordID: "rec-ontime",
		Text:     "Je suis arrive a l'heure",
	})
	assert.ErrorIs(t, err, justification.ErrNotEligible)
}

func TestJustificationService_Submit_WhilePending(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())
	submitLate(t, svc)

	_, err := svc.Submit(context.Background(), employeeActor, justification.SubmitRequest{
		RecordID: "rec-late",
		Text:     "Nouvelle version",
	})
	assert.ErrorIs(t, err, justification.ErrAlreadyPending)
}

func TestJustificationService_Decide_Approve(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())
	created := submitLate(t, svc)

	resp, err := svc.Decide(context.Background(), rhActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusApprouvee),
	})
	require.NoError(t, err)

	assert.Equal(t, string(justification.StatusApprouvee), resp.Status)
	assert.Equal(t, "Approuvée", resp.StatusLabel)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, "rh-1", *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)
}

func TestJustificationService_Decide_RequiresValidator(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())
	created := submitLate(t, svc)

	_, err := svc.Decide(context.Background(), employeeActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusApprouvee),
	})
	assert.ErrorIs(t, err, justification.ErrValidatorRequired)
}

func TestJustificationService_Decide_SelfValidation(t *testing.T) {
	cases := newFakeCaseRepo()
	records := fixtureRecords()
	records.records["rec-rh"] = attendance.Record{
		ID:           "rec-rh",
		EmployeeID:   "rh-1",
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:       attendance.StatusLate,
		DelayMinutes: 5,
	}
	svc := NewJustificationService(nil, cases, records, fakeFileService{})

	created, err := svc.Submit(context.Background(), rhActor, justification.SubmitRequest{
		RecordID: "rec-rh",
		Text:     "Reunion externe",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), rhActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusApprouvee),
	})
	assert.ErrorIs(t, err, justification.ErrSelfValidation)

	// Another validator may still decide it.
	_, err = svc.Decide(context.Background(), dgActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusApprouvee),
	})
	assert.NoError(t, err)
}

func TestJustificationService_Decide_Twice(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())
	created := submitLate(t, svc)

	_, err := svc.Decide(context.Background(), rhActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusRefusee),
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), dgActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusApprouvee),
	})
	assert.ErrorIs(t, err, justification.ErrAlreadyDecided)
}

func TestJustificationService_ResubmitAfterRefusal(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())
	created := submitLate(t, svc)

	_, err := svc.Decide(context.Background(), rhActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusRefusee),
	})
	require.NoError(t, err)

	resp, err := svc.Submit(context.Background(), employeeActor, justification.SubmitRequest{
		RecordID: "rec-late",
		Text:     "Panne de transport, attestation jointe",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, string(justification.StatusEnAttente), resp.Status)
	assert.Nil(t, resp.DecidedBy)
	assert.Nil(t, resp.DecidedAt)
	assert.Equal(t, "Panne de transport, attestation jointe", resp.Text)
}

func TestJustificationService_SubmitAfterApproval(t *testing.T) {
	svc := newTestService(newFakeCaseRepo())
	created := submitLate(t, svc)

	_, err := svc.Decide(context.Background(), rhActor, justification.DecideRequest{
		CaseID:   created.ID,
		Decision: string(justification.StatusApprouvee),
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), employeeActor, justification.SubmitRequest{
		RecordID: "rec-late",
		Text:     "Encore une fois",
	})
	assert.ErrorIs(t, err, justification.ErrAlreadyApproved)
}

func TestJustificationService_GetCase_ScopedToOwner(t *testing.T) {
	cases := newFakeCaseRepo()
	records := fixtureRecords()
	records.records["rec-other"] = attendance.Record{
		ID:           "rec-other",
		EmployeeID:   "emp-2",
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:       attendance.StatusLate,
		DelayMinutes: 10,
	}
	svc := NewJustificationService(nil, cases, records, fakeFileService{})

	other := user.Actor{ID: "emp-2", Role: user.RoleEmploye}
	created, err := svc.Submit(context.Background(), other, justification.SubmitRequest{
		RecordID: "rec-other",
		Text:     "Rendez-vous medical",
	})
	require.NoError(t, err)

	_, err = svc.GetCase(context.Background(), employeeActor, created.ID)
	assert.ErrorIs(t, err, justification.ErrNotOwner)

	got, err := svc.GetCase(context.Background(), rhActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestJustificationService_ListCases_EmployeeSeesOnlyOwn(t *testing.T) {
	cases := newFakeCaseRepo()
	records := fixtureRecords()
	records.records["rec-other"] = attendance.Record{
		ID:           "rec-other",
		EmployeeID:   "emp-2",
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:       attendance.StatusLate,
		DelayMinutes: 10,
	}
	svc := NewJustificationService(nil, cases, records, fakeFileService{})

	submitLate(t, svc)
	_, err := svc.Submit(context.Background(), user.Actor{ID: "emp-2", Role: user.RoleEmploye}, justification.SubmitRequest{
		RecordID: "rec-other",
		Text:     "Rendez-vous medical",
	})
	require.NoError(t, err)

	result, err := svc.ListCases(context.Background(), employeeActor, justification.CaseFilter{EmployeeID: "emp-2"})
	require.NoError(t, err)

	require.Len(t, result.Cases, 1)
	assert.Equal(t, "emp-1", result.Cases[0].EmployeeID)
}

package report

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/report"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// fakeRecordLister serves List pages from a fixed slice and records the
// filters it saw.
type fakeRecordLister struct {
	records     []attendance.Record
	seenFilters []attendance.RecordFilter
}

func (f *fakeRecordLister) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeRecordLister) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordLister) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordLister) CompletePunchIn(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeRecordLister) CompletePunchOut(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeRecordLister) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	f.seenFilters = append(f.seenFilters, filter)

	var matching []attendance.Record
	for _, rec := range f.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		matching = append(matching, rec)
	}

	start := (filter.Page - 1) * filter.Limit
	if start >= len(matching) {
		return nil, int64(len(matching)), nil
	}
	end := start + filter.Limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end], int64(len(matching)), nil
}

func (f *fakeRecordLister) CreateAbsent(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return false, nil
}

var (
	employeeActor = user.Actor{ID: "emp-1", Role: user.RoleEmploye}
	rhActor       = user.Actor{ID: "rh-1", Role: user.RoleRH}
)

func manyRecords(n int) []attendance.Record {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	out := make([]attendance.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, attendance.Record{
			ID:         fmt.Sprintf("rec-%d", i),
			EmployeeID: "emp-1",
			Date:       date,
			Status:     attendance.StatusCompleted,
			TotalHours: 8,
		})
	}
	return out
}

func TestReportService_Export_XLSX(t *testing.T) {
	repo := &fakeRecordLister{records: manyRecords(3)}
	svc := NewReportService(repo)

	resp, err := svc.Export(context.Background(), rhActor, report.ExportRequest{Format: report.FormatXLSX})
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.ContentType)
	assert.Contains(t, resp.Filename, ".xlsx")
	assert.NotEmpty(t, resp.Content)
}

func TestReportService_Export_PDF(t *testing.T) {
	repo := &fakeRecordLister{records: manyRecords(3)}
	svc := NewReportService(repo)

	resp, err := svc.Export(context.Background(), rhActor, report.ExportRequest{Format: report.FormatPDF})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Contains(t, resp.Filename, ".pdf")
	assert.True(t, bytes.HasPrefix(resp.Content, []byte("%PDF")))
}

func TestReportService_Export_InvalidFormat(t *testing.T) {
	svc := NewReportService(&fakeRecordLister{})

	_, err := svc.Export(context.Background(), rhActor, report.ExportRequest{Format: "csv"})
	assert.Error(t, err)
}

func TestReportService_Export_WalksAllPages(t *testing.T) {
	// More rows than one export page, so the service must page through.
	repo := &fakeRecordLister{records: manyRecords(450)}
	svc := NewReportService(repo)

	_, err := svc.Export(context.Background(), rhActor, report.ExportRequest{Format: report.FormatXLSX})
	require.NoError(t, err)

	require.Len(t, repo.seenFilters, 3)
	assert.Equal(t, 1, repo.seenFilters[0].Page)
	assert.Equal(t, 3, repo.seenFilters[2].Page)
}

func TestReportService_Export_EmployeeScoped(t *testing.T) {
	records := manyRecords(2)
	records = append(records, attendance.Record{
		ID:         "rec-other",
		EmployeeID: "emp-2",
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusCompleted,
	})
	repo := &fakeRecordLister{records: records}
	svc := NewReportService(repo)

	_, err := svc.Export(context.Background(), employeeActor, report.ExportRequest{
		Format: report.FormatXLSX,
		Filter: attendance.RecordFilter{EmployeeID: "emp-2"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, repo.seenFilters)
	assert.Equal(t, "emp-1", repo.seenFilters[0].EmployeeID)
}

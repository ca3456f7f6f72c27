package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestClassify_NoPunchIn(t *testing.T) {
	cls := Classify(nil, nil, date(8, 0), 0)

	assert.Equal(t, StatusAbsent, cls.Status)
	assert.Equal(t, 0, cls.DelayMinutes)
	assert.Equal(t, 0.0, cls.TotalHours)
}

func TestClassify_OnTime(t *testing.T) {
	timeIn := date(7, 58)
	cls := Classify(&timeIn, nil, date(8, 0), 0)

	assert.Equal(t, StatusInProgress, cls.Status)
	assert.Equal(t, 0, cls.DelayMinutes)
}

func TestClassify_LatePunchIn(t *testing.T) {
	// Expected 08:00, punch at 08:17: delay is measured from the
	// expected time, not from the end of the grace period.
	timeIn := date(8, 17)
	cls := Classify(&timeIn, nil, date(8, 0), 15*time.Minute)

	assert.Equal(t, StatusLate, cls.Status)
	assert.Equal(t, 17, cls.DelayMinutes)
}

func TestClassify_WithinGrace(t *testing.T) {
	timeIn := date(8, 10)
	cls := Classify(&timeIn, nil, date(8, 0), 15*time.Minute)

	assert.Equal(t, StatusInProgress, cls.Status)
	assert.Equal(t, 0, cls.DelayMinutes)
}

func TestClassify_ExactlyAtGraceBoundary(t *testing.T) {
	// A punch exactly at expected+grace is still on time.
	timeIn := date(8, 15)
	cls := Classify(&timeIn, nil, date(8, 0), 15*time.Minute)

	assert.Equal(t, StatusInProgress, cls.Status)
	assert.Equal(t, 0, cls.DelayMinutes)
}

func TestClassify_Completed(t *testing.T) {
	timeIn := date(8, 0)
	timeOut := date(16, 30)
	cls := Classify(&timeIn, &timeOut, date(8, 0), 0)

	assert.Equal(t, StatusCompleted, cls.Status)
	assert.Equal(t, 8.5, cls.TotalHours)
}

func TestClassify_CompletedKeepsDelay(t *testing.T) {
	timeIn := date(9, 5)
	timeOut := date(17, 5)
	cls := Classify(&timeIn, &timeOut, date(8, 0), 15*time.Minute)

	assert.Equal(t, StatusCompleted, cls.Status)
	assert.Equal(t, 65, cls.DelayMinutes)
	assert.Equal(t, 8.0, cls.TotalHours)
}

func TestClassify_HoursRoundedToOneDecimal(t *testing.T) {
	timeIn := date(8, 0)
	timeOut := date(15, 44) // 7h44m = 7.733...
	cls := Classify(&timeIn, &timeOut, date(8, 0), 0)

	assert.Equal(t, 7.7, cls.TotalHours)
}

func TestClassify_NegativeSpanClampedToZero(t *testing.T) {
	timeIn := date(16, 0)
	timeOut := date(8, 0)
	cls := Classify(&timeIn, &timeOut, date(8, 0), 0)

	assert.Equal(t, StatusCompleted, cls.Status)
	assert.Equal(t, 0.0, cls.TotalHours)
}

func TestClassify_Idempotent(t *testing.T) {
	timeIn := date(8, 17)
	timeOut := date(17, 0)

	first := Classify(&timeIn, &timeOut, date(8, 0), 15*time.Minute)
	second := Classify(&timeIn, &timeOut, date(8, 0), 15*time.Minute)

	assert.Equal(t, first, second)
}

func TestRecord_JustificationEligible(t *testing.T) {
	assert.True(t, Record{Status: StatusAbsent}.JustificationEligible())
	assert.True(t, Record{Status: StatusLate, DelayMinutes: 17}.JustificationEligible())
	assert.True(t, Record{Status: StatusCompleted, DelayMinutes: 5}.JustificationEligible())
	assert.False(t, Record{Status: StatusInProgress}.JustificationEligible())
	assert.False(t, Record{Status: StatusCompleted}.JustificationEligible())
}

func TestStatus_Info(t *testing.T) {
	assert.Equal(t, StatusInfo{Label: "Absent", Severity: "danger"}, StatusAbsent.Info())
	assert.Equal(t, StatusInfo{Label: "En retard", Severity: "warning"}, StatusLate.Info())
	assert.Equal(t, StatusInfo{Label: "En cours", Severity: "info"}, StatusInProgress.Info())
	assert.Equal(t, StatusInfo{Label: "Terminé", Severity: "success"}, StatusCompleted.Info())
}

package attendance

import (
	"math"
	"time"
)

// Classification is the derived portion of a Record.
type Classification struct {
	Status       Status
	DelayMinutes int
	TotalHours   float64
}

// Classify derives a record's status, lateness and worked hours from its
// punches. It is a pure function of its inputs: re-running it over the same
// punches always yields the same result, which is what makes
// re-classification idempotent.
//
// Lateness is measured from expectedIn, not from the end of the grace
// period; the grace period only decides whether the delay counts at all.
func Classify(timeIn, timeOut *time.Time, expectedIn time.Time, grace time.Duration) Classification {
	if timeIn == nil {
		return Classification{Status: StatusAbsent}
	}

	delayMinutes := 0
	if timeIn.After(expectedIn.Add(grace)) {
		delayMinutes = int(math.Floor(timeIn.Sub(expectedIn).Minutes()))
	}

	if timeOut == nil {
		status := StatusInProgress
		if delayMinutes > 0 {
			status = StatusLate
		}
		return Classification{Status: status, DelayMinutes: delayMinutes}
	}

	hours := timeOut.Sub(*timeIn).Hours()
	if hours < 0 {
		hours = 0
	}

	return Classification{
		Status:       StatusCompleted,
		DelayMinutes: delayMinutes,
		TotalHours:   math.Round(hours*10) / 10,
	}
}

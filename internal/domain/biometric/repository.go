package biometric

import "context"

// LogRepository stores raw device events.
type LogRepository interface {
	Create(ctx context.Context, l Log) (Log, error)
	List(ctx context.Context, employeeID string, limit int) ([]Log, error)
}

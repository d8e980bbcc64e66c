// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/farm-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the wall clock.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now in UTC.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now().UTC()
}

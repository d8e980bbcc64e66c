// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Temporal queries and derived fields take
// their notion of "today" from a Clock so the core stays deterministic under
// test.
type Clock interface {
	Now() time.Time
}

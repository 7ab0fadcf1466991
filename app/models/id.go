package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns a record identifier: unix milliseconds followed by a random
// suffix. IDs are opaque strings to the API, but existing clients sort them
// as timestamps, so the time prefix stays string-sortable. The suffix keeps
// same-millisecond inserts from colliding.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

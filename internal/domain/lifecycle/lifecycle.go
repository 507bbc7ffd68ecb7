// Package lifecycle holds shared start/stop tunables for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 10 * time.Second

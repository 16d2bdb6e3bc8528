// Package lifecycle holds shared constants for service startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second

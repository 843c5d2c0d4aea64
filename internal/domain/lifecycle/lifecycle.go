// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (database ping, server shutdown).
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds timing constants shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (pings, graceful shutdown, closing clients).
const DefaultTimeout = 10 * time.Second

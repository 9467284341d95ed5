// Package lifecycle holds shared start/stop conventions for long-lived
// infrastructure components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared constants for component startup and
// shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop
// before its fx hook gives up.
const DefaultTimeout = 10 * time.Second

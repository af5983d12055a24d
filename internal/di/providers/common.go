// Package providers contains the dependency injection providers for all
// application components.
package providers

import "time"

// shutdownTimeout bounds graceful shutdown of individual components.
const shutdownTimeout = 10 * time.Second

// Package delivery defines the contract every delivery mechanism
// (HTTP today, possibly others later) fulfills towards the runtime.
package delivery

import "context"

// Delivery is a long-running server started by the application runtime.
type Delivery interface {
	Serve(ctx context.Context) error
}

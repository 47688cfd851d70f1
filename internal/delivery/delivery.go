// Package delivery defines the contract every transport implementation
// exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the
// application and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract shared by the servers the binaries run.
package delivery

import "context"

// Delivery is a long-running server started by main and stopped by fx hooks.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

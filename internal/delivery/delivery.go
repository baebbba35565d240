// Package delivery defines the entry points exposed by the application.
package delivery

import "context"

// Delivery is a long-running server (HTTP API, worker) started by main.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

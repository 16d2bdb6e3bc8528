// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a transport surface (HTTP today) managed by the application
// lifecycle: Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

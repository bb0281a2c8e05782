// Package detect resolves which cloud provider hosts a domain by asking an
// external detection endpoint.
package detect

import (
	"context"

	"cloudboard/internal/catalog"
)

// Detector answers "which cloud hosts this?" for a user-supplied URL or
// domain. Implementations receive the raw input exactly as typed; any
// normalization is the caller's concern and happens independently.
type Detector interface {
	Detect(ctx context.Context, rawURL string) (catalog.Provider, error)
}

// Func adapts a plain function to the Detector interface.
type Func func(ctx context.Context, rawURL string) (catalog.Provider, error)

// Detect implements Detector.
func (f Func) Detect(ctx context.Context, rawURL string) (catalog.Provider, error) {
	return f(ctx, rawURL)
}

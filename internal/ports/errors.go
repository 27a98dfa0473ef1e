package ports

import (
	"errors"
	"fmt"
)

// ErrNotConfigured signals a missing credential or setting. It fails the
// specific operation that needed the value, never the whole process.
var ErrNotConfigured = errors.New("service is not configured")

// ErrVariantNotFound signals a checkout request naming a variant the
// product does not carry. Client error, not an upstream failure.
var ErrVariantNotFound = errors.New("variant not found on product")

// UpstreamError normalizes a third-party service failure. Status is the
// HTTP status the upstream answered with; Detail is whatever structured
// body it returned, if any. The delivery layer propagates Status verbatim.
type UpstreamError struct {
	Service string
	Status  int
	Detail  any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream status %d", e.Service, e.Status)
}

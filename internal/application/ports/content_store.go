package ports

import "context"

type ContentStore interface {
	// Save writes data under a fresh random name and returns its location.
	Save(ctx context.Context, data []byte) (string, error)
	// Remove deletes what Save wrote at location. A missing location is not an error.
	Remove(ctx context.Context, location string) error
}

package storage

import "context"

// PlaceholderResolver is used when no object storage is configured. URLs it
// hands out are not fetchable; they just record what would have been stored.
type PlaceholderResolver struct{}

func (PlaceholderResolver) Resolve(_ context.Context, _ []byte, originalName, _, prefix string) string {
	return PlaceholderURL(prefix, originalName)
}

func (PlaceholderResolver) Release(context.Context, string) {}

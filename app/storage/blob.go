// Package storage turns uploaded file bytes into fetchable URLs. The B2
// resolver persists to a Backblaze bucket; the placeholder resolver only
// synthesizes a URL of the same shape. Either way the caller's request
// succeeds; persistence failures degrade, they never abort.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Resolver converts uploaded bytes into a URL and cleans URLs up again.
//
// Resolve never reports an error: when durable storage is unavailable or
// fails, it returns a placeholder URL and the upload proceeds with degraded
// metadata. Release is best-effort; failures are logged and swallowed
// because deleting the metadata record is the priority operation.
type Resolver interface {
	Resolve(ctx context.Context, data []byte, originalName, contentType, prefix string) string
	Release(ctx context.Context, url string)
}

// objectKey builds the storage key for an upload: destination prefix, the
// upload time and the original name with spaces replaced.
func objectKey(prefix, originalName string) string {
	name := strings.ReplaceAll(originalName, " ", "_")
	return fmt.Sprintf("%s/%d-%s", prefix, time.Now().UnixMilli(), name)
}

// PlaceholderURL synthesizes a non-functional URL with the same shape a
// durable store would produce. It is descriptive only.
func PlaceholderURL(prefix, originalName string) string {
	return "https://files.invalid/" + objectKey(prefix, originalName)
}

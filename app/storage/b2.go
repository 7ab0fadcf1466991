package storage

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kurin/blazer/b2"
)

// B2Resolver stores uploads in a public Backblaze B2 bucket.
type B2Resolver struct {
	bucket *b2.Bucket
}

func NewB2(ctx context.Context, accountID, appKey, bucketName string) (*B2Resolver, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &B2Resolver{bucket: bucket}, nil
}

func (s *B2Resolver) Resolve(ctx context.Context, data []byte, originalName, contentType, prefix string) string {
	key := objectKey(prefix, originalName)
	obj := s.bucket.Object(key)

	w := obj.NewWriter(ctx, b2.WithAttrsOption(&b2.Attrs{ContentType: contentType}))
	if _, err := w.Write(data); err != nil {
		w.Close()
		log.Printf("b2 upload of %s failed: %v", key, err)
		return PlaceholderURL(prefix, originalName)
	}
	if err := w.Close(); err != nil {
		log.Printf("b2 upload of %s failed: %v", key, err)
		return PlaceholderURL(prefix, originalName)
	}

	return fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), key)
}

func (s *B2Resolver) Release(ctx context.Context, url string) {
	marker := "/file/" + s.bucket.Name() + "/"
	i := strings.Index(url, marker)
	if i < 0 {
		// Placeholder or foreign URL, nothing stored for it.
		return
	}
	key := url[i+len(marker):]
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		log.Printf("b2 delete of %s failed: %v", key, err)
	}
}

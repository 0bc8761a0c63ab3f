package storage

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// CloudStorageClient resolves restaurant image references. Documents may
// carry a full URL or a bare object path inside the app's bucket.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// ResolveImageURL turns an image reference into a fetchable URL. Full
// URLs pass through untouched.
func (c *CloudStorageClient) ResolveImageURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, strings.TrimPrefix(ref, "/"))
}

// Prefetch checks that the object behind a bucket path exists, warming
// metadata caches for the page render. URL references are skipped.
func (c *CloudStorageClient) Prefetch(ctx context.Context, ref string) error {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return nil
	}
	_, err := c.client.Bucket(c.bucketName).Object(strings.TrimPrefix(ref, "/")).Attrs(ctx)
	return err
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

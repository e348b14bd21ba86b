package backend

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Buckets owned by the file storage collaborator.
const (
	BucketVideos = "videos"
	BucketImages = "images"
)

// Storage uploads and deletes media in the hosted file store over the S3
// wire protocol. Uploaded objects are publicly readable; Upload returns the
// public URL the storefront embeds in pages.
type Storage struct {
	client    *minio.Client
	publicURL string
}

// NewStorage creates the file storage client. Construction is fail-fast:
// an unreachable endpoint or a missing bucket surfaces at startup, not on
// the first upload.
func NewStorage(ctx context.Context, endpoint, accessKey, secretKey, publicURL string) (*Storage, error) {
	secure := strings.HasPrefix(endpoint, "https://")
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	for _, bucket := range []string{BucketVideos, BucketImages} {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("storage client: check bucket %q: %w", bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("storage client: bucket %q does not exist", bucket)
		}
	}

	return &Storage{client: client, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Upload stores file bytes under bucket/path and returns the public URL
func (s *Storage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	if bucket != BucketVideos && bucket != BucketImages {
		return "", fmt.Errorf("upload: unknown bucket %q", bucket)
	}

	_, err := s.client.PutObject(ctx, bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, path, err)
	}

	return s.publicURL + "/" + bucket + "/" + path, nil
}

// Delete removes an object from the file store
func (s *Storage) Delete(ctx context.Context, bucket, path string) error {
	if bucket != BucketVideos && bucket != BucketImages {
		return fmt.Errorf("delete: unknown bucket %q", bucket)
	}
	if err := s.client.RemoveObject(ctx, bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, path, err)
	}
	return nil
}

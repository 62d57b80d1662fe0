package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/rana-danish-se/naqvix-server/models"
)

// Gateway is the upload/delete surface of the external media store.
// Implementations must be safe for concurrent use; each call is independent.
type Gateway interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader, size int64) (models.MediaRef, error)
	Delete(ctx context.Context, storageKey string) error
}

// Store implements Gateway on top of an S3-compatible object store.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string

	ensureOnce sync.Once
	ensureErr  error
}

// NewStore builds a Store. baseURL is the public prefix objects are served
// from; when empty the client endpoint is used.
func NewStore(client *minio.Client, bucket, baseURL string) *Store {
	if baseURL == "" && client != nil {
		baseURL = client.EndpointURL().String()
	}
	return &Store{
		client:  client,
		bucket:  strings.TrimSpace(bucket),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// EnsureBucket creates the bucket on first use. Safe to call repeatedly.
func (s *Store) EnsureBucket(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("media store client is nil")
	}
	if s.bucket == "" {
		return fmt.Errorf("media store bucket is empty")
	}
	s.ensureOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.ensureErr = err
			return
		}
		if exists {
			return
		}
		s.ensureErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	})
	if s.ensureErr != nil {
		return fmt.Errorf("ensure media bucket %q: %w", s.bucket, s.ensureErr)
	}
	return nil
}

// Upload stores the bytes under a fresh key inside folder and returns the
// resulting ref. The storage key doubles as the deletion handle.
func (s *Store) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader, size int64) (models.MediaRef, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return models.MediaRef{}, err
	}
	key := buildObjectKey(folder, filename)
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, opts); err != nil {
		return models.MediaRef{}, fmt.Errorf("upload %s: %w", key, err)
	}
	return models.MediaRef{
		URL:        s.objectURL(key),
		StorageKey: key,
	}, nil
}

// Delete removes one object by its storage key.
func (s *Store) Delete(ctx context.Context, storageKey string) error {
	if s.client == nil {
		return fmt.Errorf("media store client is nil")
	}
	if err := s.client.RemoveObject(ctx, s.bucket, storageKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", storageKey, err)
	}
	return nil
}

func (s *Store) objectURL(key string) string {
	return s.baseURL + "/" + s.bucket + "/" + key
}

// buildObjectKey keeps the original extension but never the original name,
// so uploads cannot collide or traverse folders.
func buildObjectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) > 8 {
		ext = ""
	}
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "misc"
	}
	return folder + "/" + uuid.NewString() + ext
}

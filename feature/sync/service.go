package sync

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dev-server/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report summarizes a pull run.
type Report struct {
	// Downloaded is the number of objects written to disk.
	Downloaded int
	// Skipped is the number of objects already up to date locally.
	Skipped int
	// Bytes is the total number of body bytes downloaded.
	Bytes int64
}

// Service downloads client files from the storage bucket into the serve directory.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	destDir string
	logger  *zap.Logger
}

// NewService creates a new sync service writing into destDir.
func NewService(client storage.Client, bucket, prefix, destDir string, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		destDir: filepath.Clean(destDir),
		logger:  logger,
	}
}

// Pull lists the bucket under the configured prefix and downloads every object
// into the destination directory, preserving the key hierarchy. Objects whose
// local copy already matches the remote size are skipped.
func (s *Service) Pull(ctx context.Context) (*Report, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", s.bucket)
	}

	report := &Report{}
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	})

	for obj := range objects {
		if obj.Err != nil {
			return report, fmt.Errorf("failed to list bucket %q: %w", s.bucket, obj.Err)
		}
		// Folder marker objects carry no content.
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		dest, err := s.destPath(obj.Key)
		if err != nil {
			s.logger.Warn("Skipping unsafe object key", zap.String("key", obj.Key))
			continue
		}

		if info, err := os.Stat(dest); err == nil && info.Size() == obj.Size {
			report.Skipped++
			continue
		}

		n, err := s.download(ctx, obj.Key, dest)
		if err != nil {
			return report, err
		}
		s.logger.Info("Downloaded", zap.String("key", obj.Key), zap.Int64("bytes", n))
		report.Downloaded++
		report.Bytes += n
	}

	return report, nil
}

// destPath maps an object key to a local path under the destination directory.
// Keys resolving outside of it are rejected.
func (s *Service) destPath(key string) (string, error) {
	rel := strings.TrimPrefix(key, s.prefix)
	rel = strings.TrimPrefix(rel, "/")
	dest := filepath.Join(s.destDir, filepath.FromSlash(rel))
	if dest == s.destDir || !strings.HasPrefix(dest, s.destDir+string(filepath.Separator)) {
		return "", fmt.Errorf("object key %q escapes destination directory", key)
	}
	return dest, nil
}

func (s *Service) download(ctx context.Context, key, dest string) (int64, error) {
	rc, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %q: %w", key, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create %q: %w", dest, err)
	}

	n, err := io.Copy(f, rc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to write %q: %w", dest, err)
	}
	return n, nil
}

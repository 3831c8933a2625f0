package sync

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"dev-server/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objectChannel(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func TestService_Pull(t *testing.T) {
	t.Run("DownloadsObjects", func(t *testing.T) {
		dest := t.TempDir()
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "", dest, zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "index.html", Size: 13},
			minio.ObjectInfo{Key: "nitro/client.js", Size: 2},
			minio.ObjectInfo{Key: "bundled/", Size: 0},
		))
		mockClient.On("GetObject", mock.Anything, "test-bucket", "index.html", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString("<html></html>")), nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "nitro/client.js", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString("js")), nil)

		report, err := svc.Pull(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, report.Downloaded)
		assert.Equal(t, 0, report.Skipped)
		assert.Equal(t, int64(15), report.Bytes)

		body, err := os.ReadFile(filepath.Join(dest, "index.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(body))

		body, err = os.ReadFile(filepath.Join(dest, "nitro", "client.js"))
		require.NoError(t, err)
		assert.Equal(t, "js", string(body))
	})

	t.Run("SkipsUpToDateFiles", func(t *testing.T) {
		dest := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dest, "index.html"), []byte("<html></html>"), 0o644))

		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "", dest, zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "index.html", Size: 13},
		))

		report, err := svc.Pull(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, report.Downloaded)
		assert.Equal(t, 1, report.Skipped)
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StripsPrefix", func(t *testing.T) {
		dest := t.TempDir()
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "client/", dest, zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "client/styles/main.css", Size: 4},
		))
		mockClient.On("GetObject", mock.Anything, "test-bucket", "client/styles/main.css", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString("body")), nil)

		report, err := svc.Pull(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Downloaded)

		_, err = os.Stat(filepath.Join(dest, "styles", "main.css"))
		assert.NoError(t, err)
	})

	t.Run("RejectsEscapingKeys", func(t *testing.T) {
		dest := t.TempDir()
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "", dest, zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "../evil.sh", Size: 4},
		))

		report, err := svc.Pull(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, report.Downloaded)
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "", t.TempDir(), zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

		_, err := svc.Pull(context.Background())
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("BucketCheckError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "", t.TempDir(), zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

		_, err := svc.Pull(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("ListError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", "", t.TempDir(), zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Err: assert.AnError},
		))

		_, err := svc.Pull(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

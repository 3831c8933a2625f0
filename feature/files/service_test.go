package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Resolve(t *testing.T) {
	base := t.TempDir()
	svc := NewService(base, zap.NewNop())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"Root", "/", base, nil},
		{"Simple", "/index.html", filepath.Join(base, "index.html"), nil},
		{"Nested", "/bundled/furniture/chair.nitro", filepath.Join(base, "bundled", "furniture", "chair.nitro"), nil},
		{"DotSegmentsInside", "/a/../b.js", filepath.Join(base, "b.js"), nil},
		{"EscapesBase", "../secret.txt", "", ErrEscapesBase},
		{"EscapesBaseDeep", "/../../etc/passwd", "", ErrEscapesBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Fetch(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "index.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "sub", "index.html"), []byte("sub index"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "empty"), 0o755))

	svc := NewService(base, zap.NewNop())

	t.Run("ExistingFile", func(t *testing.T) {
		f, err := svc.Fetch("/index.html")
		require.NoError(t, err)
		assert.Equal(t, []byte("<html></html>"), f.Body)
		assert.Equal(t, filepath.Join(base, "index.html"), f.Path)
	})

	t.Run("RootServesIndex", func(t *testing.T) {
		f, err := svc.Fetch("/")
		require.NoError(t, err)
		assert.Equal(t, []byte("<html></html>"), f.Body)
	})

	t.Run("DirectoryServesIndex", func(t *testing.T) {
		f, err := svc.Fetch("/sub")
		require.NoError(t, err)
		assert.Equal(t, []byte("sub index"), f.Body)
	})

	t.Run("DirectoryWithoutIndex", func(t *testing.T) {
		_, err := svc.Fetch("/empty")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := svc.Fetch("/missing.html")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Escaping", func(t *testing.T) {
		_, err := svc.Fetch("../secret.txt")
		assert.ErrorIs(t, err, ErrEscapesBase)
	})

	t.Run("Unreadable", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("file modes are not enforced for root")
		}
		locked := filepath.Join(base, "locked.js")
		require.NoError(t, os.WriteFile(locked, []byte("secret"), 0o000))
		_, err := svc.Fetch("/locked.js")
		assert.ErrorIs(t, err, fs.ErrPermission)
	})
}

func TestService_ContentType(t *testing.T) {
	svc := NewService(t.TempDir(), zap.NewNop())

	tests := []struct {
		name string
		path string
		want string
	}{
		{"JavaScript", "/nitro/client.js", "application/javascript"},
		{"JavaScriptUpper", "/nitro/CLIENT.JS", "application/javascript"},
		{"CSS", "/styles/main.css", "text/css"},
		{"HTML", "/index.html", "text/html; charset=utf-8"},
		{"Unknown", "/data/figure.nitro", "application/octet-stream"},
		{"NoExtension", "/README", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ContentType(tt.path))
		})
	}
}

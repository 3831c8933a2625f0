package files

import (
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrEscapesBase is returned when a request path resolves outside the base directory.
var ErrEscapesBase = errors.New("path escapes base directory")

// IndexPage is served when a request path resolves to a directory.
const IndexPage = "index.html"

// contentTypes overrides extension-based inference for the client's assets.
// Some systems map .js to text/javascript or nothing at all, which breaks
// module loading in the browser.
var contentTypes = map[string]string{
	".js":  "application/javascript",
	".css": "text/css",
}

// File is a resolved file ready to be sent to the client.
type File struct {
	// Path is the absolute location on disk.
	Path string
	// Body is the full file content.
	Body []byte
}

// Service resolves request paths against the base directory and reads files.
type Service struct {
	baseDir string
	logger  *zap.Logger
}

// NewService creates a new file service rooted at baseDir, which must be absolute.
func NewService(baseDir string, logger *zap.Logger) *Service {
	return &Service{
		baseDir: filepath.Clean(baseDir),
		logger:  logger,
	}
}

// Resolve maps a request path to an absolute path under the base directory.
// Paths that escape the base directory return ErrEscapesBase.
func (s *Service) Resolve(requestPath string) (string, error) {
	full := filepath.Join(s.baseDir, filepath.FromSlash(requestPath))
	if full != s.baseDir && !strings.HasPrefix(full, s.baseDir+string(filepath.Separator)) {
		return "", ErrEscapesBase
	}
	return full, nil
}

// Fetch resolves and reads the file for a request path. Directory paths fall
// back to their index page. The returned error wraps fs.ErrNotExist or
// fs.ErrPermission so callers can map it to a status code.
func (s *Service) Fetch(requestPath string) (*File, error) {
	full, err := s.Resolve(requestPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		full = filepath.Join(full, IndexPage)
	}

	body, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}

	return &File{Path: full, Body: body}, nil
}

// ContentType returns the content type for a file path. The override table
// takes precedence over system MIME inference.
func (s *Service) ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

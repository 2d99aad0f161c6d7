package application

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// UploadService validates and persists image uploads on local disk, naming
// files by upload time plus a sanitized original name and returning the
// relative URL they are served under.
type UploadService struct {
	Dir     string
	MaxSize int64
	Logger  *logrus.Logger
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var uploadNameStrip = regexp.MustCompile(`[^a-z0-9._-]+`)

func NewUploadService(dir string, maxSize int64, logger *logrus.Logger) *UploadService {
	return &UploadService{Dir: dir, MaxSize: maxSize, Logger: logger}
}

// Validate rejects unsupported extensions and oversized payloads. It runs
// before anything touches disk.
func (s *UploadService) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return invalidf("only image files are allowed (jpg, jpeg, png, gif, webp)")
	}
	if size > s.MaxSize {
		return invalidf("file exceeds the %d MB limit", s.MaxSize>>20)
	}
	return nil
}

// ObjectName derives the stored filename from upload time and the sanitized
// original name.
func (s *UploadService) ObjectName(original string, now time.Time) string {
	base := strings.ToLower(filepath.Base(original))
	base = uploadNameStrip.ReplaceAllString(strings.ReplaceAll(base, " ", "-"), "")
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

// Store validates, persists, and returns the relative URL of the upload.
func (s *UploadService) Store(filename string, size int64, r io.Reader) (string, error) {
	if err := s.Validate(filename, size); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	name := s.ObjectName(filename, time.Now())
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	// Size was taken from the multipart header; cap the copy anyway so a
	// lying client cannot write past the ceiling.
	n, err := io.Copy(f, io.LimitReader(r, s.MaxSize+1))
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	if n > s.MaxSize {
		_ = os.Remove(path)
		return "", invalidf("file exceeds the %d MB limit", s.MaxSize>>20)
	}
	return "/uploads/" + name, nil
}

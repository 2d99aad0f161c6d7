package application

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadValidate_RejectsNonImage(t *testing.T) {
	t.Parallel()
	svc := NewUploadService(t.TempDir(), 5<<20, nil)

	assert.ErrorIs(t, svc.Validate("payload.exe", 100), ErrValidation)
	assert.ErrorIs(t, svc.Validate("resume.pdf", 100), ErrValidation)
	assert.ErrorIs(t, svc.Validate("noextension", 100), ErrValidation)
}

func TestUploadValidate_RejectsOversize(t *testing.T) {
	t.Parallel()
	svc := NewUploadService(t.TempDir(), 5<<20, nil)

	assert.ErrorIs(t, svc.Validate("photo.jpg", 5<<20+1), ErrValidation)
	assert.NoError(t, svc.Validate("photo.jpg", 5<<20))
}

func TestUploadValidate_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()
	svc := NewUploadService(t.TempDir(), 5<<20, nil)

	assert.NoError(t, svc.Validate("photo.JPG", 100))
	assert.NoError(t, svc.Validate("photo.WebP", 100))
}

func TestUploadObjectName(t *testing.T) {
	t.Parallel()
	svc := NewUploadService(t.TempDir(), 5<<20, nil)
	now := time.UnixMilli(1700000000000)

	name := svc.ObjectName("My Photo (1).PNG", now)
	assert.Equal(t, "1700000000000-my-photo-1.png", name)
}

func TestUploadStore_WritesFileAndReturnsURL(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	svc := NewUploadService(dir, 5<<20, nil)

	body := []byte("fake image bytes")
	url, err := svc.Store("avatar.png", int64(len(body)), bytes.NewReader(body))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))

	onDisk := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	got, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestUploadStore_LyingSizeStillCapped(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	svc := NewUploadService(dir, 16, nil)

	// Declared size fits the cap but the stream does not.
	_, err := svc.Store("avatar.png", 10, strings.NewReader(strings.Repeat("x", 64)))
	assert.ErrorIs(t, err, ErrValidation)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

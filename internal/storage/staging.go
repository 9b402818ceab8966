package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jengzang/gpx-pace-backend/internal/models"
)

// TrackExtension is the only accepted upload extension
const TrackExtension = ".gpx"

// Stager writes uploads into a directory under server-generated names. The
// client filename is never used on disk, so concurrent uploads of "run.gpx"
// cannot overwrite each other.
type Stager struct {
	dir      string
	maxBytes int64
}

// StagedFile is an upload written to disk
type StagedFile struct {
	Key          string
	Path         string
	OriginalName string
	Size         int64
}

// NewStager creates the staging directory if needed
func NewStager(dir string, maxBytes int64) (*Stager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Stager{dir: dir, maxBytes: maxBytes}, nil
}

// ValidateFilename checks the client supplied name of an upload
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewError(models.KindInvalidUpload, nil, "Please upload a valid GPX file.")
	}
	if !strings.EqualFold(filepath.Ext(name), TrackExtension) {
		return models.NewError(models.KindInvalidUpload, nil, "Please upload a valid GPX file.")
	}
	return nil
}

// Stage copies r into a new file named by a random key. Reads beyond the size
// limit fail with an invalid upload error and leave nothing behind.
func (s *Stager) Stage(originalName string, r io.Reader) (*StagedFile, error) {
	if err := ValidateFilename(originalName); err != nil {
		return nil, err
	}

	key := uuid.NewString() + TrackExtension
	path := filepath.Join(s.dir, key)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}

	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		os.Remove(path)
		return nil, models.NewError(models.KindInvalidUpload, nil,
			"upload exceeds %d bytes", s.maxBytes)
	}

	return &StagedFile{
		Key:          key,
		Path:         path,
		OriginalName: filepath.Base(originalName),
		Size:         n,
	}, nil
}

// Remove deletes a staged file. Missing files are not an error.
func (s *Stager) Remove(f *StagedFile) error {
	if f == nil {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove staged file %s: %w", f.Key, err)
	}
	return nil
}

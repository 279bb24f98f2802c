// Package filestore keeps card media as flat files in a single directory.
// Files are addressed by bare filename; older rows may still hold absolute
// paths under a previous storage root.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// tempPrefix marks in-progress writes; List skips them.
const tempPrefix = ".upload-"

// FileInfo describes a stored media file.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Store is the media directory.
type Store struct {
	root string
}

// New opens the media directory, creating it when missing.
func New(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("media dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute media directory.
func (s *Store) Root() string { return s.root }

// Save writes data to a fresh file and returns its filename. The file is
// fsynced under a temporary name and renamed into place, so a reader never
// observes a partial file.
func (s *Store) Save(data []byte) (string, error) {
	name := uuid.NewString() + sniffExtension(data)

	if err := s.writeAtomic(name, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return "", &domain.MediaError{Op: "save", Ref: name, Err: err}
	}
	return name, nil
}

func (s *Store) writeAtomic(name string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(s.root, tempPrefix+"*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filepath.Join(s.root, name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Resolve maps a reference to an absolute path. An absolute legacy path is
// returned as-is while the file still exists there; anything else resolves
// to its base name inside the media directory.
func (s *Store) Resolve(ref string) string {
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); err == nil {
			return ref
		}
	}
	return filepath.Join(s.root, Normalize(ref))
}

// Load reads the referenced file. Missing or unreadable files return an
// error matching domain.ErrMediaIO.
func (s *Store) Load(ref string) ([]byte, error) {
	if Normalize(ref) == "" {
		return nil, &domain.MediaError{Op: "load", Ref: ref, Err: os.ErrNotExist}
	}
	data, err := os.ReadFile(s.Resolve(ref))
	if err != nil {
		return nil, &domain.MediaError{Op: "load", Ref: ref, Err: err}
	}
	return data, nil
}

// Delete removes the referenced file from the media directory. A missing
// file is not an error. Files outside the media directory are never touched.
func (s *Store) Delete(ref string) error {
	name := Normalize(ref)
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &domain.MediaError{Op: "delete", Ref: ref, Err: err}
	}
	return nil
}

// Adopt makes sure the referenced file lives in the media directory and
// returns its filename. A file that only exists at its absolute legacy
// location is copied in under the same name.
func (s *Store) Adopt(ref string) (string, error) {
	name := Normalize(ref)
	if name == "" {
		return "", &domain.MediaError{Op: "adopt", Ref: ref, Err: os.ErrNotExist}
	}
	if _, err := os.Stat(filepath.Join(s.root, name)); err == nil {
		return name, nil
	}
	if !filepath.IsAbs(ref) {
		return name, &domain.MediaError{Op: "adopt", Ref: ref, Err: os.ErrNotExist}
	}

	src, err := os.Open(ref)
	if err != nil {
		return name, &domain.MediaError{Op: "adopt", Ref: ref, Err: err}
	}
	defer src.Close()

	if err := s.writeAtomic(name, func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	}); err != nil {
		return name, &domain.MediaError{Op: "adopt", Ref: ref, Err: err}
	}
	return name, nil
}

// List returns every media file in the directory.
func (s *Store) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &domain.MediaError{Op: "list", Ref: s.root, Err: err}
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: entry.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	return files, nil
}

// Normalize converts a reference (bare filename or full legacy path) to the
// bare filename used in the media directory.
func Normalize(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	name := filepath.Base(filepath.Clean(ref))
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}

package tokenstore

import (
	"appcenter-go/internal/cstmerr"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileStore persists the token as a file named TokenKey inside dir.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates a FileStore on fsys. A nil fsys means the OS filesystem.
func NewFileStore(fsys afero.Fs, dir string) *FileStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileStore{fs: fsys, dir: dir}
}

// DefaultDir is the per-user directory used when no dir is configured.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "appcenter")
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, TokenKey)
}

func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := afero.ReadFile(s.fs, s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", cstmerr.NewTokenStoreError("read "+s.path(), err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(_ context.Context, token string) error {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return cstmerr.NewTokenStoreError("create "+s.dir, err)
	}
	tmp := s.path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(token), 0o600); err != nil {
		return cstmerr.NewTokenStoreError("write "+tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path()); err != nil {
		return cstmerr.NewTokenStoreError("rename "+tmp, err)
	}
	return nil
}

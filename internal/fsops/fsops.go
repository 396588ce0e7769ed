// Package fsops provides the filesystem capability the adr dispatcher runs
// against. The default implementation sits on an afero.Fs so the same code
// drives the real disk, an in-memory filesystem in tests, and a copy-on-write
// overlay for dry runs.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Filesystem defines the filesystem operations adr needs.
type Filesystem interface {
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// CopyFile copies the contents of from to to, replacing to if it exists.
	CopyFile(from, to string) error

	// ListFiles returns the names of the regular files directly inside dir.
	ListFiles(dir string) ([]string, error)

	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Exists(path string) (bool, error)
}

// AferoFilesystem implements Filesystem on top of an afero.Fs.
type AferoFilesystem struct {
	fs afero.Fs
}

// New creates an AferoFilesystem. If fs is nil, the OS filesystem is used.
func New(fs afero.Fs) *AferoFilesystem {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &AferoFilesystem{fs: fs}
}

// DryRun wraps base so reads see the real files and writes land in memory.
func DryRun(base afero.Fs) afero.Fs {
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())
}

// Fs exposes the underlying afero.Fs.
func (a *AferoFilesystem) Fs() afero.Fs {
	return a.fs
}

func (a *AferoFilesystem) MkdirAll(path string) error {
	if err := a.fs.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

func (a *AferoFilesystem) CopyFile(from, to string) error {
	data, err := afero.ReadFile(a.fs, from)
	if err != nil {
		return fmt.Errorf("reading source file %s: %w", from, err)
	}

	if err := afero.WriteFile(a.fs, to, data, filePerm); err != nil {
		return fmt.Errorf("writing destination file %s: %w", to, err)
	}

	return nil
}

// ListFiles returns names sorted by afero.ReadDir. Symlinks count when they
// point at a regular file.
func (a *AferoFilesystem) ListFiles(dir string) ([]string, error) {
	infos, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		mode := info.Mode()
		if mode&os.ModeSymlink != 0 {
			target, err := a.fs.Stat(filepath.Join(dir, info.Name()))
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", info.Name(), err)
			}
			mode = target.Mode()
		}
		if mode.IsRegular() {
			names = append(names, info.Name())
		}
	}

	return names, nil
}

func (a *AferoFilesystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

func (a *AferoFilesystem) WriteFile(path string, data []byte) error {
	return afero.WriteFile(a.fs, path, data, filePerm)
}

func (a *AferoFilesystem) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

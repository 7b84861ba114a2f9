// Package trash moves filesystem entries into the host's recoverable
// deletion facility instead of unlinking them. On Linux it follows the
// FreeDesktop Trash specification, on macOS it uses ~/.Trash, and on
// Windows it uses a per-user recycle directory under LocalAppData.
package trash

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/mizuki0629/rrcm/pkg/logging"
)

// Trash is a handle to one trash location. Entries are moved, never
// copied, so putting something in the trash is atomic on the same
// filesystem and fails cleanly across filesystems.
type Trash struct {
	filesDir string
	infoDir  string
}

// New returns the trash for the current user on this OS.
func New() (*Trash, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrTrashFailure, "cannot locate home directory")
		}
		return &Trash{filesDir: filepath.Join(home, ".Trash")}, nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrTrashFailure, "cannot locate home directory")
			}
			base = filepath.Join(home, "AppData", "Local")
		}
		root := filepath.Join(base, "rrcm", "Trash")
		return &Trash{
			filesDir: filepath.Join(root, "files"),
			infoDir:  filepath.Join(root, "info"),
		}, nil
	default:
		root := filepath.Join(xdg.DataHome, "Trash")
		return &Trash{
			filesDir: filepath.Join(root, "files"),
			infoDir:  filepath.Join(root, "info"),
		}, nil
	}
}

// NewAt returns a trash rooted at an explicit directory, with files/ and
// info/ subdirectories. Used by tests and available for sandboxed runs.
func NewAt(root string) *Trash {
	return &Trash{
		filesDir: filepath.Join(root, "files"),
		infoDir:  filepath.Join(root, "info"),
	}
}

// Put moves path into the trash and returns its new location. The
// original entry is left untouched when the move fails.
func (t *Trash) Put(path string) (string, error) {
	logger := logging.GetLogger("trash")

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTrashFailure, "cannot absolutize %s", path)
	}
	if _, err := os.Lstat(abs); err != nil {
		return "", errors.Wrapf(err, errors.ErrTrashFailure, "cannot trash %s", abs)
	}

	if err := os.MkdirAll(t.filesDir, 0700); err != nil {
		return "", errors.Wrapf(err, errors.ErrTrashFailure, "cannot create trash directory %s", t.filesDir)
	}
	if t.infoDir != "" {
		if err := os.MkdirAll(t.infoDir, 0700); err != nil {
			return "", errors.Wrapf(err, errors.ErrTrashFailure, "cannot create trash info directory %s", t.infoDir)
		}
	}

	name := t.uniqueName(filepath.Base(abs))
	dest := filepath.Join(t.filesDir, name)

	// Write the info file first so a crash between the two steps never
	// leaves an unrecorded entry.
	if t.infoDir != "" {
		if err := t.writeInfo(name, abs); err != nil {
			return "", err
		}
	}

	if err := os.Rename(abs, dest); err != nil {
		if t.infoDir != "" {
			_ = os.Remove(t.infoPath(name))
		}
		return "", errors.Wrapf(err, errors.ErrTrashFailure, "cannot move %s to trash", abs)
	}

	logger.Info().Str("from", abs).Str("to", dest).Msg("Moved entry to trash")
	return dest, nil
}

// uniqueName picks a name that does not collide with existing trash
// entries, FreeDesktop-style: base, base.2, base.3, ...
func (t *Trash) uniqueName(base string) string {
	name := base
	for i := 2; ; i++ {
		if !t.nameTaken(name) {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}

func (t *Trash) nameTaken(name string) bool {
	if _, err := os.Lstat(filepath.Join(t.filesDir, name)); err == nil {
		return true
	}
	if t.infoDir == "" {
		return false
	}
	_, err := os.Lstat(t.infoPath(name))
	return err == nil
}

func (t *Trash) infoPath(name string) string {
	return filepath.Join(t.infoDir, name+".trashinfo")
}

// writeInfo records the original location and deletion time in the
// format mandated by the FreeDesktop Trash specification.
func (t *Trash) writeInfo(name, originalPath string) error {
	content := fmt.Sprintf(
		"[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(originalPath),
		time.Now().Format("2006-01-02T15:04:05"),
	)
	if err := os.WriteFile(t.infoPath(name), []byte(content), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrTrashFailure, "cannot write trash info for %s", originalPath)
	}
	return nil
}

// escapePath percent-encodes the path as required for .trashinfo files,
// keeping path separators readable.
func escapePath(p string) string {
	escaped := &url.URL{Path: p}
	return escaped.EscapedPath()
}

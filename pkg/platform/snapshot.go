package platform

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mizuki0629/rrcm/pkg/errors"
)

// Snapshot is an immutable capture of the process environment plus the
// platform's special-folder values. All token resolution reads from a
// Snapshot and never touches the live environment, which keeps resolution
// pure and lets tests inject fake machines.
type Snapshot struct {
	home    string
	vars    map[string]string
	folders map[Token]string
}

// NewSnapshot captures the current process environment. Special-folder
// values are queried once here, via adrg/xdg for the XDG base directories
// and user dirs, and via the conventional environment variables for the
// Windows AppData folders.
func NewSnapshot() (*Snapshot, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
	}

	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			vars[kv[:i]] = kv[i+1:]
		}
	}

	folders := map[Token]string{
		TokenXDGConfigHome: xdg.ConfigHome,
		TokenXDGDataHome:   xdg.DataHome,
		TokenXDGCacheHome:  xdg.CacheHome,
		TokenXDGStateHome:  xdg.StateHome,
	}
	// XDG_RUNTIME_DIR has no safe default and must come from the
	// environment.
	if v, ok := vars[string(TokenXDGRuntimeDir)]; ok && v != "" {
		folders[TokenXDGRuntimeDir] = v
	}
	if v, ok := vars["APPDATA"]; ok && v != "" {
		folders[TokenRoamingAppData] = v
	}
	if v, ok := vars["LOCALAPPDATA"]; ok && v != "" {
		folders[TokenLocalAppData] = v
	}
	if xdg.UserDirs.Documents != "" {
		folders[TokenDocuments] = xdg.UserDirs.Documents
	}
	if xdg.UserDirs.Desktop != "" {
		folders[TokenDesktop] = xdg.UserDirs.Desktop
	}

	return &Snapshot{home: home, vars: vars, folders: folders}, nil
}

// NewSnapshotFrom builds a snapshot from explicit values. Intended for
// tests and for resolving configurations against a machine other than the
// current one.
func NewSnapshotFrom(home string, vars map[string]string, folders map[Token]string) *Snapshot {
	s := &Snapshot{
		home:    home,
		vars:    make(map[string]string, len(vars)),
		folders: make(map[Token]string, len(folders)),
	}
	for k, v := range vars {
		s.vars[k] = v
	}
	for k, v := range folders {
		s.folders[k] = v
	}
	return s
}

// Home returns the captured home directory.
func (s *Snapshot) Home() string {
	return s.home
}

// Var looks up an environment variable in the snapshot. Empty values are
// treated as unset, matching the XDG basedir rules.
func (s *Snapshot) Var(name string) (string, bool) {
	v, ok := s.vars[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Folder looks up a captured special-folder value.
func (s *Snapshot) Folder(t Token) (string, bool) {
	v, ok := s.folders[t]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

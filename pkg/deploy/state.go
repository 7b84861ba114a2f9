package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mizuki0629/rrcm/pkg/errors"
)

// LinkState classifies one deployment unit against its destination.
type LinkState int

const (
	// StateUndeployed means the destination path does not exist.
	StateUndeployed LinkState = iota

	// StateDeployed means the destination is a symlink whose target
	// resolves to the source path.
	StateDeployed

	// StateConflict means the destination exists but is not the correct
	// symlink: a regular file, a directory, or a link pointing
	// elsewhere. A broken symlink is present, so it conflicts too.
	StateConflict
)

// String implements fmt.Stringer
func (s LinkState) String() string {
	switch s {
	case StateUndeployed:
		return "UnDeployed"
	case StateDeployed:
		return "Deployed"
	case StateConflict:
		return "Conflict"
	default:
		return fmt.Sprintf("LinkState(%d)", int(s))
	}
}

// classify determines the LinkState of dest relative to source. caseFold
// selects case-insensitive target comparison for filesystems that do not
// distinguish case. Only I/O failures unrelated to existence are returned
// as errors.
func classify(source, dest string, caseFold bool) (LinkState, string, error) {
	fi, err := os.Lstat(dest)
	if err != nil {
		if os.IsNotExist(err) {
			return StateUndeployed, "", nil
		}
		return StateUndeployed, "", errors.Wrapf(err, errors.ErrPlanning, "cannot inspect %s", dest)
	}

	if fi.Mode()&os.ModeSymlink == 0 {
		return StateConflict, "other file exists", nil
	}

	target, err := os.Readlink(dest)
	if err != nil {
		return StateConflict, "", errors.Wrapf(err, errors.ErrPlanning, "cannot read symlink %s", dest)
	}

	// A relative link target is interpreted from the link's directory
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(dest), target)
	}

	if samePath(canonicalize(source), canonicalize(target), caseFold) {
		return StateDeployed, "", nil
	}
	return StateConflict, fmt.Sprintf("different symlink to %s", target), nil
}

// canonicalize resolves symlink indirection and lexical noise so that
// every legal spelling of the same path compares equal. A path whose
// components do not all exist falls back to lexical normalization.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}

// samePath compares two canonicalized paths, folding case on
// case-insensitive filesystems.
func samePath(a, b string, caseFold bool) bool {
	if caseFold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

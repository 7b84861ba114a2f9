package platform

import (
	"path/filepath"

	"github.com/mizuki0629/rrcm/pkg/errors"
)

// unixResolver resolves tokens for Linux and macOS following the XDG base
// directory specification.
type unixResolver struct {
	snap   *Snapshot
	osName OS
}

func (r *unixResolver) OS() OS {
	return r.osName
}

func (r *unixResolver) Resolve(token Token, suffix string) (string, error) {
	base, err := r.base(token)
	if err != nil {
		return "", err
	}
	if suffix == "" {
		return base, nil
	}
	return filepath.Join(base, suffix), nil
}

func (r *unixResolver) Expand(expr string) (string, error) {
	return expandExpression(expr, func(name string) (string, error) {
		token := Token(name)
		if token == TokenHome || IsXDGBaseDirectory(token) || IsKnownFolderID(token) {
			return r.base(token)
		}
		value, ok := r.snap.Var(name)
		if !ok {
			return "", errors.Newf(errors.ErrEnvExpansion, "env var %s not found", name)
		}
		return value, nil
	})
}

// base resolves a token to its directory without any suffix. XDG tokens
// prefer the environment variable and fall back to the basedir-spec
// default relative to home. XDG_RUNTIME_DIR has no default.
func (r *unixResolver) base(token Token) (string, error) {
	switch {
	case token == TokenHome:
		if r.snap.Home() == "" {
			return "", errors.New(errors.ErrUnresolvableLocation, "home directory is not known")
		}
		return r.snap.Home(), nil

	case IsXDGBaseDirectory(token):
		if v, ok := r.snap.Var(string(token)); ok {
			return v, nil
		}
		if v, ok := r.snap.Folder(token); ok {
			return v, nil
		}
		return r.xdgDefault(token)

	case IsKnownFolderID(token):
		return "", errors.Newf(errors.ErrUnresolvableLocation, "%s is not available on %s", token, r.osName)

	default:
		value, ok := r.snap.Var(string(token))
		if !ok {
			return "", errors.Newf(errors.ErrEnvUndefined, "env var %s not found", token)
		}
		return value, nil
	}
}

// xdgDefault returns the documented default for an XDG base directory
// relative to the snapshot's home.
func (r *unixResolver) xdgDefault(token Token) (string, error) {
	home := r.snap.Home()
	if home == "" {
		return "", errors.Newf(errors.ErrUnresolvableLocation, "no value for %s and home directory is not known", token)
	}

	switch token {
	case TokenXDGConfigHome:
		return filepath.Join(home, ".config"), nil
	case TokenXDGDataHome:
		return filepath.Join(home, ".local", "share"), nil
	case TokenXDGCacheHome:
		return filepath.Join(home, ".cache"), nil
	case TokenXDGStateHome:
		return filepath.Join(home, ".local", "state"), nil
	case TokenXDGRuntimeDir:
		return "", errors.New(errors.ErrUnresolvableLocation, "XDG_RUNTIME_DIR is not set and has no default")
	default:
		return "", errors.Newf(errors.ErrUnresolvableLocation, "no default for %s", token)
	}
}

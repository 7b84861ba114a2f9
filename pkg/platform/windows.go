package platform

import (
	"path/filepath"

	"github.com/mizuki0629/rrcm/pkg/errors"
)

// windowsResolver resolves tokens for Windows. Known folder values are
// queried once when the snapshot is built; no manual defaults are
// substituted when a query yields nothing.
type windowsResolver struct {
	snap *Snapshot
}

func (r *windowsResolver) OS() OS {
	return OSWindows
}

func (r *windowsResolver) Resolve(token Token, suffix string) (string, error) {
	base, err := r.base(token)
	if err != nil {
		return "", err
	}
	if suffix == "" {
		return base, nil
	}
	return filepath.Join(base, suffix), nil
}

func (r *windowsResolver) Expand(expr string) (string, error) {
	return expandExpression(expr, func(name string) (string, error) {
		token := Token(name)
		if token == TokenHome || token == TokenUserProfile ||
			IsKnownFolderID(token) || IsXDGBaseDirectory(token) {
			return r.base(token)
		}
		value, ok := r.snap.Var(name)
		if !ok {
			return "", errors.Newf(errors.ErrEnvExpansion, "env var %s not found", name)
		}
		return value, nil
	})
}

func (r *windowsResolver) base(token Token) (string, error) {
	switch {
	case token == TokenHome || token == TokenUserProfile:
		if r.snap.Home() == "" {
			return "", errors.New(errors.ErrUnresolvableLocation, "user profile directory is not known")
		}
		return r.snap.Home(), nil

	case IsKnownFolderID(token):
		if v, ok := r.snap.Folder(token); ok {
			return v, nil
		}
		return "", errors.Newf(errors.ErrUnresolvableLocation, "known folder query failed for %s", token)

	case IsXDGBaseDirectory(token):
		// XDG variables have no defined location on Windows; honor an
		// explicit environment override only.
		if v, ok := r.snap.Var(string(token)); ok {
			return v, nil
		}
		return "", errors.Newf(errors.ErrUnresolvableLocation, "%s is not available on windows", token)

	default:
		value, ok := r.snap.Var(string(token))
		if !ok {
			return "", errors.Newf(errors.ErrEnvUndefined, "env var %s not found", token)
		}
		return value, nil
	}
}

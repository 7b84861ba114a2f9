package platform

import (
	"strings"

	"github.com/mizuki0629/rrcm/pkg/errors"
)

// Resolver turns base-directory tokens and path expressions into concrete
// absolute paths for one operating system. Implementations are pure; every
// value comes from the Snapshot the resolver was built with.
type Resolver interface {
	// OS returns the operating system this resolver targets.
	OS() OS

	// Resolve returns the absolute path for a token, with an optional
	// relative suffix joined onto it. It fails with
	// errors.ErrUnresolvableLocation when the token has no value on this
	// OS, and with errors.ErrEnvUndefined when a literal environment
	// variable token is not set.
	Resolve(token Token, suffix string) (string, error)

	// Expand substitutes ${VAR} and %VAR% references in a path
	// expression. Expansion is a single pass; substituted values are not
	// rescanned. Unresolvable references fail with
	// errors.ErrEnvExpansion rather than expanding to an empty string.
	Expand(expr string) (string, error)
}

// NewResolver returns the resolver for the running OS.
func NewResolver(snap *Snapshot) Resolver {
	return ResolverFor(CurrentOS(), snap)
}

// ResolverFor returns the resolver implementation for an explicit OS.
// Non-native resolvers are fully functional as long as the snapshot holds
// the values they need, which is how cross-OS behavior is tested.
func ResolverFor(osName OS, snap *Snapshot) Resolver {
	if osName == OSWindows {
		return &windowsResolver{snap: snap}
	}
	return &unixResolver{snap: snap, osName: osName}
}

// expandExpression scans expr once, replacing ${NAME} and %NAME%
// references via lookup. Both reference styles are accepted regardless of
// OS so that one configuration file can describe every machine.
func expandExpression(expr string, lookup func(name string) (string, error)) (string, error) {
	var b strings.Builder
	runes := []rune(expr)

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '$' && i+1 < len(runes) && runes[i+1] == '{':
			end := -1
			for j := i + 2; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return "", errors.Newf(errors.ErrEnvExpansion, "unterminated variable reference in %q", expr)
			}
			name := string(runes[i+2 : end])
			if name == "" {
				return "", errors.Newf(errors.ErrEnvExpansion, "empty variable name in %q", expr)
			}
			value, err := lookup(name)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i = end
		case c == '%':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '%' {
					end = j
					break
				}
			}
			if end < 0 {
				return "", errors.Newf(errors.ErrEnvExpansion, "unterminated variable reference in %q", expr)
			}
			name := string(runes[i+1 : end])
			if name == "" {
				return "", errors.Newf(errors.ErrEnvExpansion, "empty variable name in %q", expr)
			}
			value, err := lookup(name)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i = end
		default:
			b.WriteRune(c)
		}
	}

	return b.String(), nil
}

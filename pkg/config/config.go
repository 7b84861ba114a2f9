// Package config defines the rrcm configuration model: a dotfiles root,
// a set of named repositories, and per-repository deployment targets
// mapping logical names to per-OS destination path expressions.
package config

import (
	"sort"

	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/mizuki0629/rrcm/pkg/platform"
)

// OsPath holds one destination path expression per supported OS. An empty
// entry means the path is not defined on that OS; whatever owns the OsPath
// is then skipped there without error.
type OsPath struct {
	Windows string `koanf:"windows" yaml:"windows,omitempty"`
	Mac     string `koanf:"mac" yaml:"mac,omitempty"`
	Linux   string `koanf:"linux" yaml:"linux,omitempty"`
}

// Expression returns the raw path expression for an OS and whether one is
// defined.
func (p OsPath) Expression(osName platform.OS) (string, bool) {
	var expr string
	switch osName {
	case platform.OSWindows:
		expr = p.Windows
	case platform.OSMac:
		expr = p.Mac
	case platform.OSLinux:
		expr = p.Linux
	}
	if expr == "" {
		return "", false
	}
	return expr, true
}

// Resolved expands the expression for the resolver's OS into an absolute
// path. The second return value is false when no expression is defined
// for that OS, which is not an error. A defined expression that fails to
// expand is a hard error.
func (p OsPath) Resolved(r platform.Resolver) (string, bool, error) {
	expr, ok := p.Expression(r.OS())
	if !ok {
		return "", false, nil
	}
	path, err := r.Expand(expr)
	if err != nil {
		return "", true, err
	}
	return path, true, nil
}

// Repository is one named dotfiles repository with its deployment targets.
// Each key of Deploy names a directory directly under the repository whose
// immediate children get symlinked into the resolved destination.
type Repository struct {
	Name   string            `koanf:"name" yaml:"name"`
	URL    string            `koanf:"url" yaml:"url"`
	Deploy map[string]OsPath `koanf:"deploy" yaml:"deploy"`
}

// TargetNames returns the deployment target names in sorted order so that
// every run processes targets deterministically.
func (r *Repository) TargetNames() []string {
	names := make([]string, 0, len(r.Deploy))
	for name := range r.Deploy {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AppConfig is the root configuration document.
type AppConfig struct {
	Dotfiles OsPath       `koanf:"dotfiles" yaml:"dotfiles"`
	Repos    []Repository `koanf:"repos" yaml:"repos"`
}

// DotfilesRoot resolves the dotfiles download directory for the current
// OS. Unlike deployment targets, the root must be defined: everything
// else hangs off it.
func (c *AppConfig) DotfilesRoot(r platform.Resolver) (string, error) {
	path, ok, err := c.Dotfiles.Resolved(r)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Newf(errors.ErrConfigValid, "dotfiles path is not defined for %s", r.OS())
	}
	return path, nil
}

// FindRepo returns the repository with the given name, or nil.
func (c *AppConfig) FindRepo(name string) *Repository {
	for i := range c.Repos {
		if c.Repos[i].Name == name {
			return &c.Repos[i]
		}
	}
	return nil
}

// Validate checks structural invariants that the parsers cannot express.
func (c *AppConfig) Validate() error {
	seen := make(map[string]struct{}, len(c.Repos))
	for _, repo := range c.Repos {
		if repo.Name == "" {
			return errors.New(errors.ErrConfigValid, "repository with empty name")
		}
		if _, dup := seen[repo.Name]; dup {
			return errors.Newf(errors.ErrConfigValid, "duplicate repository name %q", repo.Name)
		}
		seen[repo.Name] = struct{}{}
	}
	return nil
}

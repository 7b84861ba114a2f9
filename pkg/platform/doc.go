// Package platform resolves symbolic base-directory tokens (home directory,
// XDG base directories, Windows known folders, environment variables) into
// concrete absolute paths for a given operating system.
//
// Resolution is pure: all values come from an immutable Snapshot captured at
// process startup, so the same token always resolves to the same path within
// a run and tests can inject fake environments. Deployment destinations in
// the configuration are written as path expressions using ${VAR} or %VAR%
// references; both forms are accepted on every host OS because the same
// configuration file travels between machines.
package platform

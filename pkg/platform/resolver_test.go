package platform

import (
	"path/filepath"
	"testing"

	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinuxSnapshot() *Snapshot {
	return NewSnapshotFrom("/home/u", map[string]string{
		"HOME":  "/home/u",
		"SHELL": "/bin/zsh",
	}, nil)
}

func newWindowsSnapshot() *Snapshot {
	return NewSnapshotFrom(`C:\Users\u`, map[string]string{
		"USERPROFILE": `C:\Users\u`,
		"APPDATA":     `C:\Users\u\AppData\Roaming`,
	}, map[Token]string{
		TokenRoamingAppData: `C:\Users\u\AppData\Roaming`,
		TokenLocalAppData:   `C:\Users\u\AppData\Local`,
		TokenDocuments:      `C:\Users\u\Documents`,
		TokenDesktop:        `C:\Users\u\Desktop`,
	})
}

func TestResolveHome(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	got, err := r.Resolve(TokenHome, "")
	require.NoError(t, err)
	assert.Equal(t, "/home/u", got)
}

func TestResolveXDGDefaults(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	tests := []struct {
		token Token
		want  string
	}{
		{TokenXDGConfigHome, "/home/u/.config"},
		{TokenXDGDataHome, "/home/u/.local/share"},
		{TokenXDGCacheHome, "/home/u/.cache"},
		{TokenXDGStateHome, "/home/u/.local/state"},
	}

	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			got, err := r.Resolve(tt.token, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveXDGEnvOverride(t *testing.T) {
	snap := NewSnapshotFrom("/home/u", map[string]string{
		"XDG_CONFIG_HOME": "/custom/config",
	}, nil)
	r := ResolverFor(OSLinux, snap)

	got, err := r.Resolve(TokenXDGConfigHome, "nvim")
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/nvim", got)
}

func TestResolveRuntimeDirRequiresEnv(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	_, err := r.Resolve(TokenXDGRuntimeDir, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvableLocation))

	snap := NewSnapshotFrom("/home/u", map[string]string{
		"XDG_RUNTIME_DIR": "/run/user/1000",
	}, nil)
	r = ResolverFor(OSLinux, snap)

	got, err := r.Resolve(TokenXDGRuntimeDir, "app")
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/app", got)
}

func TestResolveKnownFolderNotOnUnix(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	_, err := r.Resolve(TokenRoamingAppData, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvableLocation))
}

func TestResolveLiteralEnvVar(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	got, err := r.Resolve(Token("SHELL"), "")
	require.NoError(t, err)
	assert.Equal(t, "/bin/zsh", got)

	_, err = r.Resolve(Token("NO_SUCH_VAR"), "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvUndefined))
}

func TestResolveIsPure(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	first, err := r.Resolve(TokenXDGDataHome, "apps")
	require.NoError(t, err)
	second, err := r.Resolve(TokenXDGDataHome, "apps")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// No directory is created as a side effect of resolution
	assert.NoDirExists(t, first)
}

func TestWindowsKnownFolders(t *testing.T) {
	r := ResolverFor(OSWindows, newWindowsSnapshot())

	tests := []struct {
		token Token
		want  string
	}{
		{TokenRoamingAppData, `C:\Users\u\AppData\Roaming`},
		{TokenLocalAppData, `C:\Users\u\AppData\Local`},
		{TokenDocuments, `C:\Users\u\Documents`},
		{TokenDesktop, `C:\Users\u\Desktop`},
	}

	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			got, err := r.Resolve(tt.token, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowsKnownFolderQueryFailure(t *testing.T) {
	snap := NewSnapshotFrom(`C:\Users\u`, nil, nil)
	r := ResolverFor(OSWindows, snap)

	// No manual default is substituted when the query yields nothing
	_, err := r.Resolve(TokenDesktop, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvableLocation))
}

func TestWindowsUserProfile(t *testing.T) {
	r := ResolverFor(OSWindows, newWindowsSnapshot())

	got, err := r.Resolve(TokenUserProfile, "")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\u`, got)
}

func TestExpandUnixStyle(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	tests := []struct {
		expr string
		want string
	}{
		{"${HOME}", "/home/u"},
		{"${HOME}/bin", "/home/u/bin"},
		{"/abc/${HOME}/bin", "/abc//home/u/bin"},
		{"${XDG_CONFIG_HOME}", "/home/u/.config"},
		{"${SHELL}", "/bin/zsh"},
		{"$HOME", "$HOME"}, // bare $ is literal, only ${...} expands
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := r.Expand(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandWindowsStyleOnUnixHost(t *testing.T) {
	// The same configuration file travels between machines, so both
	// reference styles must expand on every OS.
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	got, err := r.Expand("%HOME%/bin")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/bin", got)
}

func TestExpandWindowsKnownFolder(t *testing.T) {
	r := ResolverFor(OSWindows, newWindowsSnapshot())

	got, err := r.Expand(`%FOLDERID_RoamingAppData%\nvim`)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\u\AppData\Roaming\nvim`, got)

	got, err = r.Expand(`${USERPROFILE}\dotfiles`)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\u\dotfiles`, got)
}

func TestExpandErrors(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	tests := []struct {
		name string
		expr string
		code errors.ErrorCode
	}{
		{"unterminated brace", "${HOME", errors.ErrEnvExpansion},
		{"empty brace", "${}/.config", errors.ErrEnvExpansion},
		{"missing var", "${NO_SUCH_VAR}", errors.ErrEnvExpansion},
		{"unterminated percent", "%HOME", errors.ErrEnvExpansion},
		{"empty percent", "%%", errors.ErrEnvExpansion},
		{"known folder on unix", "%FOLDERID_Desktop%", errors.ErrUnresolvableLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Expand(tt.expr)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestExpandIsSinglePass(t *testing.T) {
	// A substituted value containing a reference is not rescanned
	snap := NewSnapshotFrom("/home/u", map[string]string{
		"INNER": "value",
		"OUTER": "${INNER}",
	}, nil)
	r := ResolverFor(OSLinux, snap)

	got, err := r.Expand("${OUTER}")
	require.NoError(t, err)
	assert.Equal(t, "${INNER}", got)
}

func TestCurrentOSMapsGOOS(t *testing.T) {
	got := CurrentOS()
	assert.Contains(t, []OS{OSWindows, OSMac, OSLinux}, got)
}

func TestResolveSuffixJoin(t *testing.T) {
	r := ResolverFor(OSLinux, newLinuxSnapshot())

	got, err := r.Resolve(TokenXDGConfigHome, filepath.Join("app", "deep"))
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.config/app/deep", got)
}

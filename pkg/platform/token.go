package platform

// Token is a symbolic base-directory name. The predefined tokens map to
// XDG base directories on Unix-like systems and Known Folder IDs on
// Windows; any other value is treated as a literal environment variable
// name.
type Token string

const (
	TokenHome        Token = "HOME"
	TokenUserProfile Token = "USERPROFILE"

	TokenXDGConfigHome Token = "XDG_CONFIG_HOME"
	TokenXDGDataHome   Token = "XDG_DATA_HOME"
	TokenXDGCacheHome  Token = "XDG_CACHE_HOME"
	TokenXDGStateHome  Token = "XDG_STATE_HOME"
	TokenXDGRuntimeDir Token = "XDG_RUNTIME_DIR"

	TokenRoamingAppData Token = "FOLDERID_RoamingAppData"
	TokenLocalAppData   Token = "FOLDERID_LocalAppData"
	TokenDocuments      Token = "FOLDERID_Documents"
	TokenDesktop        Token = "FOLDERID_Desktop"
)

// IsXDGBaseDirectory reports whether the token names one of the XDG base
// directories defined by the basedir spec.
func IsXDGBaseDirectory(t Token) bool {
	switch t {
	case TokenXDGConfigHome, TokenXDGDataHome, TokenXDGCacheHome,
		TokenXDGStateHome, TokenXDGRuntimeDir:
		return true
	}
	return false
}

// IsKnownFolderID reports whether the token names a Windows known folder.
func IsKnownFolderID(t Token) bool {
	switch t {
	case TokenRoamingAppData, TokenLocalAppData, TokenDocuments, TokenDesktop:
		return true
	}
	return false
}

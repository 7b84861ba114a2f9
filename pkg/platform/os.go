package platform

import "runtime"

// OS identifies an operating system family as named in the configuration
// file. Deployment destinations are keyed by these values.
type OS string

const (
	OSWindows OS = "windows"
	OSMac     OS = "mac"
	OSLinux   OS = "linux"
)

// CurrentOS returns the OS value for the running process.
func CurrentOS() OS {
	switch runtime.GOOS {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMac
	default:
		return OSLinux
	}
}

// String implements fmt.Stringer
func (o OS) String() string {
	return string(o)
}

// CaseInsensitiveFS reports whether the default filesystem on this OS
// compares paths case-insensitively.
func (o OS) CaseInsensitiveFS() bool {
	return o == OSWindows || o == OSMac
}

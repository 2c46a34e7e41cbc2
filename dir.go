package disk

import (
	"github.com/adrg/xdg"
)

// Dir identifies a class of OS-convention base directory, resolved through
// the XDG Base Directory specification (and its macOS/Windows equivalents)
// via github.com/adrg/xdg.
type Dir uint8

const (
	// DirData is the user data directory, e.g. ~/.local/share on Linux.
	// This is the zero value.
	DirData Dir = iota

	// DirDataLocal is the non-roaming user data directory. On XDG platforms
	// it resolves identically to DirData; the distinction only matters on
	// Windows (AppData\Local vs AppData\Roaming).
	DirDataLocal

	// DirConfig is the user configuration directory, e.g. ~/.config on Linux.
	DirConfig

	// DirCache is the user cache directory, e.g. ~/.cache on Linux.
	DirCache

	// DirState is the user state directory, e.g. ~/.local/state on Linux.
	DirState

	// DirPreference is the user preference directory. On XDG platforms it
	// resolves identically to DirConfig.
	DirPreference

	// DirDownload is the user download directory, e.g. ~/Downloads.
	DirDownload

	// DirCustom uses Binding.Root as the base directory instead of an OS
	// convention. Root must be an absolute path.
	DirCustom
)

func (d Dir) String() string {
	switch d {
	case DirData:
		return "data"
	case DirDataLocal:
		return "data-local"
	case DirConfig:
		return "config"
	case DirCache:
		return "cache"
	case DirState:
		return "state"
	case DirPreference:
		return "preference"
	case DirDownload:
		return "download"
	case DirCustom:
		return "custom"
	}
	return "unknown"
}

// resolve returns the absolute base path for the directory kind.
// root is only consulted for DirCustom.
func (d Dir) resolve(root string) (string, error) {
	var base string
	switch d {
	case DirData, DirDataLocal:
		base = xdg.DataHome
	case DirConfig, DirPreference:
		base = xdg.ConfigHome
	case DirCache:
		base = xdg.CacheHome
	case DirState:
		base = xdg.StateHome
	case DirDownload:
		base = xdg.UserDirs.Download
	case DirCustom:
		base = root
	default:
		return "", &PathError{Dir: d, Reason: "unknown directory kind"}
	}

	if base == "" {
		return "", &PathError{Dir: d, Reason: "base directory could not be determined"}
	}
	return base, nil
}

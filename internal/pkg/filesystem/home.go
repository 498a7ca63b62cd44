package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppDir returns the textact state directory (~/.textact). The directory is
// not created here; callers create it when they first write.
func AppDir() string {
	return filepath.Join(UserHomeDir(), ".textact")
}

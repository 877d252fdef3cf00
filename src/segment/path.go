package segment

import (
	"os"
	"path/filepath"
	"strings"
)

// Path returns cwd with the home directory collapsed to "~"
func Path(cwd, home string) string {
	if home == "" || home == string(filepath.Separator) {
		return cwd
	}
	home = filepath.Clean(home)
	if cwd == home {
		return "~"
	}
	if strings.HasPrefix(cwd, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(cwd, home)
	}
	return cwd
}

// WorkingDir prefers $PWD, which keeps symlinked paths the way the user
// typed them, and falls back to os.Getwd.
func WorkingDir() (string, error) {
	if pwd := os.Getenv("PWD"); pwd != "" && filepath.IsAbs(pwd) {
		return pwd, nil
	}
	return os.Getwd()
}

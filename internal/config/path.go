package config

import (
	"os"
	"path/filepath"
)

const appDirName = "ulidd"

// DefaultDataDir picks where the ledger lives when --data-dir is not given.
// ULIDD_DATA_DIR wins, then XDG_DATA_HOME, then the platform's usual
// application data location, then ~/.ulidd. Without a home directory it
// falls back to ./data.
func DefaultDataDir() string {
	if v := os.Getenv(EnvPrefix + "DATA_DIR"); v != "" {
		return v
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./data"
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}

	candidates := []struct{ parent, dir string }{
		{"/var/lib", filepath.Join("/var/lib", appDirName)},
		{filepath.Join(homeDir, "Library"), filepath.Join(homeDir, "Library", "Application Support", appDirName)},
		{filepath.Join(homeDir, "AppData"), filepath.Join(homeDir, "AppData", "Local", appDirName)},
	}
	for _, c := range candidates {
		if isDir(c.parent) {
			return c.dir
		}
	}
	return filepath.Join(homeDir, "."+appDirName)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

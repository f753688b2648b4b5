package profile

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.wchat, or $WCHAT_HOME when set.
func BaseDir() string {
	if dir := os.Getenv("WCHAT_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wchat")
}

// Dir returns the profile-specific directory.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "profiles", name)
}

// SocketPath returns the UDS socket path for a profile.
func SocketPath(name string) string {
	return filepath.Join(Dir(name), "daemon.sock")
}

// AppDBPath returns the daemon database path.
func AppDBPath(name string) string {
	return filepath.Join(Dir(name), "chat.db")
}

// KeyPath returns the token signing key path.
func KeyPath(name string) string {
	return filepath.Join(Dir(name), "jwt.key")
}

// FilesDir returns the root of the disk blob backend.
func FilesDir(name string) string {
	return filepath.Join(Dir(name), "files")
}

// AccountsDir holds the session markers of a profile.
func AccountsDir(name string) string {
	return filepath.Join(Dir(name), "accounts")
}

// AccountPath returns the session marker path for an account.
func AccountPath(name, account string) string {
	return filepath.Join(AccountsDir(name), account+".json")
}

// LogDir returns the log directory for a profile.
func LogDir(name string) string {
	return filepath.Join(Dir(name), "logs")
}

// LogPath returns the daemon log file path.
func LogPath(name string) string {
	return filepath.Join(LogDir(name), "wchatd.log")
}

// TUILogPath returns the TUI log file path.
func TUILogPath(name string) string {
	return filepath.Join(LogDir(name), "wchattui.log")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// EnsureDir creates the profile directory tree with proper permissions.
func EnsureDir(name string) error {
	dirs := []string{
		Dir(name),
		LogDir(name),
		AccountsDir(name),
		FilesDir(name),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}

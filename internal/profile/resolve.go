package profile

import "github.com/matheus3301/wchat/internal/config"

const (
	DefaultProfileName = "main"
	DefaultAccountName = "default"
)

// Resolve determines the active profile name using precedence:
// 1. flagOverride (--profile flag)
// 2. WCHAT_DEFAULT_PROFILE, then config.toml default_profile
// 3. "main"
func Resolve(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	cfg, err := config.Resolve(ConfigPath())
	if err == nil && cfg.DefaultProfile != "" {
		return cfg.DefaultProfile
	}
	return DefaultProfileName
}

// ResolveAccount returns the account name, defaulting to "default".
func ResolveAccount(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	return DefaultAccountName
}

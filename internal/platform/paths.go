package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory.
const AppName = "KegelToday"

// ConfigDir returns override when set, otherwise <UserConfigDir>/KegelToday.
func ConfigDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName), nil
}

package storage

import (
	"errors"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/logger"
)

// LoadThemeMode reads the theme mode, defaulting to auto.
func LoadThemeMode(kv KV) model.ThemeMode {
	raw, err := kv.Get(ThemeModeKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("read theme mode failed", "error", err)
		}
		return model.ThemeAuto
	}
	mode, _ := model.ParseThemeMode(raw)
	return mode
}

// SaveThemeMode stores the theme mode.
func SaveThemeMode(kv KV, mode model.ThemeMode) error {
	return kv.Set(ThemeModeKey, string(mode))
}

package intake

import (
	"file-intake/internal/config"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/validate"
	"fmt"
)

// OptionsFromConfig resolves the pipeline options once at startup.
// A configured default volume must parse, so a bad STORAGE_VOLUME fails fast.
func OptionsFromConfig(cfg config.StorageConfig) (Options, error) {
	if cfg.Volume != "" {
		if _, err := destination.ParseVolume(cfg.Volume); err != nil {
			return Options{}, fmt.Errorf("STORAGE_VOLUME: %w", err)
		}
	}

	exts := cfg.AllowedExtensions
	if len(exts) == 0 {
		exts = validate.DefaultExtensions
	}

	return Options{
		Location: destination.Spec{
			Root:      cfg.Root,
			Volume:    cfg.Volume,
			Subfolder: cfg.Subfolder,
		},
		AllowList:      validate.NewAllowList(exts...),
		VolumesEnabled: cfg.VolumesEnabled,
	}, nil
}

// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"fmt"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/i18n"
)

// runValidate loads the config file and prints what would be used.
func runValidate(path string) error {
	if path == "" {
		return errors.New(errors.KindValidation, "validate needs -config")
	}
	cfg, err := config.Load(path)
	if err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Printf("❌ Configuration validation failed with %d errors:\n", len(verrs))
			for _, e := range verrs {
				fmt.Printf("  - %s\n", e.Error())
			}
			return errors.New(errors.KindValidation, "validation failed")
		}
		return err
	}

	th := cfg.Notifications.Thresholds()
	fmt.Printf("✅ %s is valid\n", path)
	fmt.Printf("  language:      %s\n", i18n.MatchLanguage(cfg.Language))
	fmt.Printf("  notifications: configured=%v packets=%s bytes=%s favorites=%v\n",
		th.Configured(), show(th.PacketsThreshold), show(th.BytesThreshold), th.FavoriteNotify)
	if cfg.API.Enabled {
		fmt.Printf("  api:           %s\n", cfg.API.Listen)
	}
	if cfg.SSH.Enabled {
		fmt.Printf("  ssh:           %s\n", cfg.SSH.Addr())
	}
	return nil
}

func show(v *uint32) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

// Package config loads the CLI-facing overlay on top of the optimizer's
// built-in defaults, so a run can override individual tunables from a JSON
// file without touching the rest.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"classopt/internal/optimizer"
)

// overlay mirrors optimizer.Config's external option table with pointer
// fields, so a JSON document can specify only the options it wants to
// change and leave the rest at Default()'s values.
type overlay struct {
	MaxSwaps        *int     `json:"max_swaps"`
	StagnationLimit *int     `json:"stagnation_limit"`
	WDistrib        *float64 `json:"w_distrib"`
	WParity         *float64 `json:"w_parity"`
	WProfiles       *float64 `json:"w_profiles"`
	WFriends        *float64 `json:"w_friends"`
	HeadMin         *int     `json:"head_min"`
	HeadMax         *int     `json:"head_max"`
	Niv1Max         *int     `json:"niv1_max"`
	Niv1Min         *int     `json:"niv1_min"`
	DefaultLV2      *string  `json:"default_lv2"`
	ExplorationRate *float64 `json:"exploration_rate"`
	SampleSize      *int     `json:"sample_size"`
}

// Load reads a JSON overlay file and applies it on top of optimizer.Default().
// A missing path is not an error: callers pass "" to mean "use the default
// configuration unmodified".
func Load(path string) (optimizer.Config, error) {
	cfg := optimizer.Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var ov overlay
	if err := json.Unmarshal(data, &ov); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	applyOverlay(&cfg, &ov)
	return cfg, nil
}

func applyOverlay(cfg *optimizer.Config, ov *overlay) {
	if ov.MaxSwaps != nil {
		cfg.MaxSwaps = *ov.MaxSwaps
	}
	if ov.StagnationLimit != nil {
		cfg.StagnationLimit = *ov.StagnationLimit
	}
	if ov.WDistrib != nil {
		cfg.WDistrib = *ov.WDistrib
	}
	if ov.WParity != nil {
		cfg.WParity = *ov.WParity
	}
	if ov.WProfiles != nil {
		cfg.WProfiles = *ov.WProfiles
	}
	if ov.WFriends != nil {
		cfg.WFriends = *ov.WFriends
	}
	if ov.HeadMin != nil {
		cfg.HeadMin = *ov.HeadMin
	}
	if ov.HeadMax != nil {
		cfg.HeadMax = *ov.HeadMax
	}
	if ov.Niv1Max != nil {
		cfg.Niv1Max = *ov.Niv1Max
	}
	if ov.Niv1Min != nil {
		cfg.Niv1Min = *ov.Niv1Min
	}
	if ov.DefaultLV2 != nil {
		cfg.DefaultLV2 = *ov.DefaultLV2
	}
	if ov.ExplorationRate != nil {
		cfg.ExplorationRate = *ov.ExplorationRate
	}
	if ov.SampleSize != nil {
		cfg.SampleSize = *ov.SampleSize
	}
}

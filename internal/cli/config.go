package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the render flags so whole renders can be described in
// a TOML file. Explicitly passed flags always win over file values.
type fileConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Sites  int    `toml:"sites"`
	Seed   *int64 `toml:"seed"`
	Out    string `toml:"out"`

	// gradient mode
	From string `toml:"from"`
	To   string `toml:"to"`

	// palette mode
	MinHue *float64 `toml:"min_hue"`
	MaxHue *float64 `toml:"max_hue"`

	// site markers
	Markers      string  `toml:"markers"`
	MarkerRadius float64 `toml:"marker_radius"`
}

// loadConfig reads a TOML render config from disk
func loadConfig(fpath string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if _, err := toml.DecodeFile(fpath, cfg); err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", fpath, err)
	}
	return cfg, nil
}

// resolveInt returns the flag value if the flag was passed, otherwise the
// config file value if it's set, otherwise the flag default.
func resolveInt(cmd *cobra.Command, name string, flagVal, fileVal int) int {
	if cmd.Flags().Changed(name) || fileVal == 0 {
		return flagVal
	}
	return fileVal
}

func resolveString(cmd *cobra.Command, name, flagVal, fileVal string) string {
	if cmd.Flags().Changed(name) || fileVal == "" {
		return flagVal
	}
	return fileVal
}

func resolveFloat(cmd *cobra.Command, name string, flagVal float64, fileVal *float64) float64 {
	if cmd.Flags().Changed(name) || fileVal == nil {
		return flagVal
	}
	return *fileVal
}

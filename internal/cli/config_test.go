package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "render.toml")
	err := os.WriteFile(fpath, []byte(`
width = 640
height = 480
sites = 42
seed = 7
out = "art.png"
from = "steelblue"
to = "#ffcc00"
min_hue = 120.0
markers = "black"
marker_radius = 3.5
`), 0644)
	require.NoError(t, err)

	cfg, err := loadConfig(fpath)
	require.NoError(t, err)

	require.Equal(t, 640, cfg.Width)
	require.Equal(t, 480, cfg.Height)
	require.Equal(t, 42, cfg.Sites)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, int64(7), *cfg.Seed)
	require.Equal(t, "art.png", cfg.Out)
	require.Equal(t, "steelblue", cfg.From)
	require.Equal(t, "#ffcc00", cfg.To)
	require.NotNil(t, cfg.MinHue)
	require.Equal(t, 120.0, *cfg.MinHue)
	require.Nil(t, cfg.MaxHue)
	require.Equal(t, "black", cfg.Markers)
	require.Equal(t, 3.5, cfg.MarkerRadius)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadConfigBadToml(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(fpath, []byte("width = [what"), 0644))

	_, err := loadConfig(fpath)
	require.Error(t, err)
}

func TestResolvePrecedence(t *testing.T) {
	flags := &renderFlags{}
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)

	fpath := filepath.Join(t.TempDir(), "render.toml")
	require.NoError(t, os.WriteFile(fpath, []byte("width = 100\nsites = 9\nout = \"file.png\"\n"), 0644))

	// width passed explicitly, sites & out left to the config file
	require.NoError(t, cmd.Flags().Set("config", fpath))
	require.NoError(t, cmd.Flags().Set("width", "640"))

	settings, err := flags.resolve(cmd)
	require.NoError(t, err)

	// explicit flag wins over the file, file wins over the default
	require.Equal(t, 640, settings.width)
	require.Equal(t, 9, settings.sites)
	require.Equal(t, "file.png", settings.out)
	require.Equal(t, 768, settings.height, "flag default when neither flag nor file set it")
}

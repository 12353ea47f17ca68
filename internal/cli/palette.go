package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/voidshard/cellart"
)

func newPaletteCmd() *cobra.Command {
	flags := &renderFlags{}
	var minHue, maxHue float64

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Render a Voronoi diagram with independently random cell colors",
		Long: `Render a Voronoi diagram where every cell gets its own random color.
Colors are sampled in HSV space; narrow the hue window with --min-hue /
--max-hue for a more cohesive palette (degrees, 0-360).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			settings, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			colors := cellart.NewRandomColorConfig(time.Now().UnixNano())
			colors.MinHue = resolveFloat(cmd, "min-hue", minHue, settings.file.MinHue)
			colors.MaxHue = resolveFloat(cmd, "max-hue", maxHue, settings.file.MaxHue)

			logger.Debug("rendering palette diagram", "width", settings.width, "height", settings.height, "sites", settings.sites)
			start := time.Now()

			img := settings.newImage()
			if err := cellart.RandomVoronoi(img, colors, settings.sites, settings.opts...); err != nil {
				return err
			}
			if err := cellart.SavePNG(settings.out, img); err != nil {
				return err
			}

			logger.Info("wrote diagram", "path", settings.out, "took", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&minHue, "min-hue", 0, "lowest hue to sample, in degrees")
	cmd.Flags().Float64Var(&maxHue, "max-hue", 360, "highest hue to sample, in degrees")

	return cmd
}

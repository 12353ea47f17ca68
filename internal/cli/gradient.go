package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/voidshard/cellart"
)

func newGradientCmd() *cobra.Command {
	flags := &renderFlags{}
	var from, to string

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Render a Voronoi diagram shaded along a two color gradient",
		Long: `Render a Voronoi diagram where each cell takes a flat shade from the
gradient running between --from and --to across the image width.
Colors may be SVG 1.1 names ("steelblue") or hex strings ("#4682b4").`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			settings, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			defFrom, defTo := cellart.DefaultGradient()
			c1 := defFrom
			if v := resolveString(cmd, "from", from, settings.file.From); v != "" {
				if c1, err = cellart.ParseColor(v); err != nil {
					return err
				}
			}
			c2 := defTo
			if v := resolveString(cmd, "to", to, settings.file.To); v != "" {
				if c2, err = cellart.ParseColor(v); err != nil {
					return err
				}
			}

			logger.Debug("rendering gradient diagram", "width", settings.width, "height", settings.height, "sites", settings.sites)
			start := time.Now()

			img := settings.newImage()
			if err := cellart.GradientVoronoi(img, c1, c2, settings.sites, settings.opts...); err != nil {
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
	cmd.Flags().StringVar(&from, "from", "", "gradient start color (default midnightblue)")
	cmd.Flags().StringVar(&to, "to", "", "gradient end color (default gold)")

	return cmd
}

package cli

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/voidshard/cellart"
)

// renderFlags are the flags shared by both diagram subcommands
type renderFlags struct {
	width  int
	height int
	sites  int
	seed   int64
	out    string
	config string

	markers      string
	markerRadius float64
}

func (r *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.width, "width", 1024, "image width in pixels")
	cmd.Flags().IntVar(&r.height, "height", 768, "image height in pixels")
	cmd.Flags().IntVarP(&r.sites, "sites", "n", 100, "number of diagram sites (cells)")
	cmd.Flags().Int64Var(&r.seed, "seed", 0, "RNG seed; omit for a random diagram")
	cmd.Flags().StringVarP(&r.out, "out", "o", "cellart.png", "output PNG path")
	cmd.Flags().StringVarP(&r.config, "config", "c", "", "TOML config file; explicit flags win")
	cmd.Flags().StringVar(&r.markers, "markers", "", "draw a dot of this color over every site")
	cmd.Flags().Float64Var(&r.markerRadius, "marker-radius", 2, "site marker dot radius in pixels")
}

// resolved render settings after merging flags with any config file
type renderSettings struct {
	width  int
	height int
	sites  int
	out    string
	file   *fileConfig
	opts   []cellart.Option
}

// resolve merges flag & config file values. The config file (if any) fills
// in whatever the caller didn't pass explicitly.
func (r *renderFlags) resolve(cmd *cobra.Command) (*renderSettings, error) {
	file := &fileConfig{}
	if r.config != "" {
		loaded, err := loadConfig(r.config)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	s := &renderSettings{
		width:  resolveInt(cmd, "width", r.width, file.Width),
		height: resolveInt(cmd, "height", r.height, file.Height),
		sites:  resolveInt(cmd, "sites", r.sites, file.Sites),
		out:    resolveString(cmd, "out", r.out, file.Out),
		file:   file,
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", s.width, s.height)
	}

	if cmd.Flags().Changed("seed") {
		s.opts = append(s.opts, cellart.WithSeed(r.seed))
	} else if file.Seed != nil {
		s.opts = append(s.opts, cellart.WithSeed(*file.Seed))
	}

	markers := resolveString(cmd, "markers", r.markers, file.Markers)
	if markers != "" {
		c, err := cellart.ParseColor(markers)
		if err != nil {
			return nil, err
		}
		radius := r.markerRadius
		if !cmd.Flags().Changed("marker-radius") && file.MarkerRadius > 0 {
			radius = file.MarkerRadius
		}
		s.opts = append(s.opts, cellart.WithSiteMarkers(c), cellart.WithSiteMarkerRadius(radius))
	}

	return s, nil
}

func (s *renderSettings) newImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, s.width, s.height))
}

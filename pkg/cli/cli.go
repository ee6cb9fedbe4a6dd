// Package cli builds the cobra commands shared by the fractal binaries.
package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/camera"
	"github.com/willbeason/escape-fractal/pkg/config"
	"github.com/willbeason/escape-fractal/pkg/console"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/snapshot"
	"github.com/willbeason/escape-fractal/pkg/terminal"
	"github.com/willbeason/escape-fractal/pkg/viewer"
)

// NewCommand returns the root command for kind: an interactive window, plus the
// snapshot and term subcommands.
func NewCommand(kind config.Kind) *cobra.Command {
	cfg := config.DefaultConfig(kind)

	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: fmt.Sprintf("Explore the %s set; scroll to zoom at the cursor", kind),
		Args:  cobra.ExactArgs(0),
		// main reports errors itself.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd, cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&cfg.Width, "width", cfg.Width, "width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "height in pixels")
	flags.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "maximum iterations per pixel")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines rendering rows")
	flags.StringVar(&cfg.Palette, "palette", cfg.Palette, fmt.Sprintf("colour palette, one of %v", palette.Names()))
	cmd.Flags().StringVar(&cfg.Title, "title", cfg.Title, "window title")

	if kind == config.Julia {
		flags.Float64Var(&cfg.CReal, "c-real", cfg.CReal, "real part of the Julia constant")
		flags.Float64Var(&cfg.CImag, "c-imag", cfg.CImag, "imaginary part of the Julia constant")
	}

	cmd.AddCommand(snapshotCmd(&cfg), termCmd(&cfg))

	return cmd
}

func runWindow(cmd *cobra.Command, cfg config.Config) error {
	sc, err := cfg.Scene()
	if err != nil {
		return err
	}

	printSummary(cfg)
	console.Info("Scroll to zoom; close the window to quit.")

	return viewer.Run(cmd.Context(), cfg.Title, sc)
}

type snapshotFlags struct {
	out     string
	zoom    float64
	centerX float64
	centerY float64
	caption bool
}

func snapshotCmd(cfg *config.Config) *cobra.Command {
	var sf snapshotFlags
	sf.zoom = camera.New().Zoom

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one view to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, *cfg, sf)
		},
	}

	cmd.Flags().StringVarP(&sf.out, "out", "o", "", "output file (default out/<fractal>-<timestamp>.png)")
	cmd.Flags().Float64Var(&sf.zoom, "zoom", sf.zoom, "zoom level")
	cmd.Flags().Float64Var(&sf.centerX, "center-x", 0, "real coordinate at the centre of the image")
	cmd.Flags().Float64Var(&sf.centerY, "center-y", 0, "imaginary coordinate at the centre of the image")
	cmd.Flags().BoolVar(&sf.caption, "caption", false, "draw the view parameters onto the image")

	return cmd
}

func runSnapshot(cmd *cobra.Command, cfg config.Config, sf snapshotFlags) error {
	if sf.zoom <= 0 {
		return errors.Errorf("zoom must be positive, got %v", sf.zoom)
	}

	sc, err := cfg.Scene()
	if err != nil {
		return err
	}
	sc.SetCamera(camera.Camera{Zoom: sf.zoom, OffsetX: sf.centerX, OffsetY: sf.centerY})

	out := sf.out
	if out == "" {
		out = snapshot.DefaultPath(cfg.Kind.String(), time.Now())
	}

	printSummary(cfg)
	console.Field("camera", sc.Camera())

	start := time.Now()
	err = snapshot.Save(cmd.Context(), sc, snapshot.Options{
		Path:    out,
		Caption: sf.caption,
		Title:   cfg.Kind.String(),
	})
	if err != nil {
		return err
	}

	console.Success("Saved %s in %s", out, time.Since(start).Round(time.Millisecond))
	return nil
}

func termCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Explore in the terminal; scroll to zoom, Esc or q to quit",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := cfg.Scene()
			if err != nil {
				return err
			}
			// The terminal viewer sizes the scene to the screen.
			return terminal.Run(cmd.Context(), sc)
		},
	}
}

func printSummary(cfg config.Config) {
	console.Header(cfg.Kind.String())
	console.Field("size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	console.Field("iterations", cfg.Iterations)
	console.Field("palette", cfg.Palette)
	if cfg.Kind == config.Julia {
		console.Field("c", complex(cfg.CReal, cfg.CImag))
	}
}

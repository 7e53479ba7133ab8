package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smasonuk/asciicubes"
	"github.com/smasonuk/asciicubes/display"
	"github.com/smasonuk/asciicubes/display/window"
)

const (
	displayANSI     = "ansi"
	displayTerminal = "terminal"
	displayWindow   = "window"
)

type options struct {
	configPath string
	width      int
	height     int
	projection string
	cubes      int
	collisions bool
	noColor    bool
	interval   string
	seed       int64
	display    string
	frames     int
	debug      bool
}

func main() {
	os.Exit(execute())
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "asciicubes",
		Short: "Bouncing, spinning ASCII cubes in your terminal",
		Long: `asciicubes animates rigid point-cloud cubes in 3D and draws them as
colored characters, either streamed to stdout, full screen, or in a window.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile := setupLogging(opts.debug)
			if logFile != nil {
				defer logFile.Close()
			}
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, &opts)
		},
	}

	addConfigFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.display, "display", displayANSI, "Output: ansi, terminal or window")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "Stop after this many frames (0 runs until interrupted)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)

	cmd.AddCommand(newConfigCommand())
	return cmd
}

func newConfigCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("could not encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addConfigFlags(cmd, &opts)
	return cmd
}

func addConfigFlags(cmd *cobra.Command, opts *options) {
	def := asciicubes.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.IntVar(&opts.width, "width", def.ScreenWidth, "Grid width in cells")
	f.IntVar(&opts.height, "height", def.ScreenHeight, "Grid height in cells")
	f.StringVar(&opts.projection, "projection", string(def.Projection), "orthographic or perspective")
	f.IntVar(&opts.cubes, "cubes", def.CubeCount, "Number of cubes")
	f.BoolVar(&opts.collisions, "collisions", def.Collisions, "Bounce cubes off each other")
	f.BoolVar(&opts.noColor, "no-color", false, "Draw glyphs only")
	f.StringVar(&opts.interval, "interval", def.FrameInterval.String(), "Delay between frames")
	f.Int64Var(&opts.seed, "seed", def.Seed, "Random seed (0 uses the clock)")
}

func validDisplay(name string) bool {
	switch name {
	case displayANSI, displayTerminal, displayWindow:
		return true
	}
	return false
}

// resolveConfig checks the display choice, loads the config file if any, then
// applies the flags the user actually set and validates the result.
func resolveConfig(cmd *cobra.Command, opts *options) (*asciicubes.Config, error) {
	if cmd.Flags().Lookup("display") != nil && !validDisplay(opts.display) {
		return nil, fmt.Errorf("unknown display %q: want %s, %s or %s",
			opts.display, displayANSI, displayTerminal, displayWindow)
	}

	cfg := asciicubes.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := asciicubes.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.ScreenWidth = opts.width
	}
	if f.Changed("height") {
		cfg.ScreenHeight = opts.height
	}
	if f.Changed("projection") {
		kind, err := asciicubes.ParseProjectionKind(opts.projection)
		if err != nil {
			return nil, err
		}
		cfg.Projection = kind
	}
	if f.Changed("cubes") {
		cfg.CubeCount = opts.cubes
	}
	if f.Changed("collisions") {
		cfg.Collisions = opts.collisions
	}
	if f.Changed("no-color") {
		cfg.ColorEnabled = !opts.noColor
	}
	if f.Changed("interval") {
		var d asciicubes.Duration
		if err := d.UnmarshalText([]byte(opts.interval)); err != nil {
			return nil, err
		}
		cfg.FrameInterval = d
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *asciicubes.Config, opts *options) error {
	world, err := asciicubes.NewWorldFromConfig(cfg)
	if err != nil {
		return err
	}
	loop := display.Loop{Interval: cfg.FrameInterval.Duration, Frames: opts.frames}

	switch opts.display {
	case displayANSI:
		printer := display.NewANSI(os.Stdout)
		defer printer.Close()
		return loop.Run(ctx, world, printer)
	case displayTerminal:
		printer, err := display.NewTerminal()
		if err != nil {
			return err
		}
		defer printer.Close()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		printer.Listen(cancel)
		return loop.Run(ctx, world, printer)
	case displayWindow:
		return window.Run(ctx, world, cfg.ScreenWidth, cfg.ScreenHeight, cfg.FrameInterval.Duration, opts.frames)
	}
	return fmt.Errorf("unknown display %q", opts.display)
}

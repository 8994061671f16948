package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ocodelab/go-neural-pulse/internal/network"
)

var version = "0.3.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configFile string
		schemaFile string
		preset     string
		width      int
		height     int
		seed       uint64
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          "neuralpulse",
		Short:        "Decorative pulsing dendrite-network animation",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configFile, schemaFile, preset, width, height, seed, debug)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "JSON config file (overrides the preset)")
	flags.StringVar(&schemaFile, "schema", "config/neuralpulse.schema.json", "JSON schema used to validate --config")
	flags.StringVarP(&preset, "preset", "p", "dense", "built-in preset to run")
	flags.IntVar(&width, "width", 0, "override window width")
	flags.IntVar(&height, "height", 0, "override window height")
	flags.Uint64Var(&seed, "seed", 0, "population seed (0 = random)")
	flags.BoolVar(&debug, "debug", false, "verbose logging")

	cmd.AddCommand(presetsCmd())
	return cmd
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in animation presets",
		Run: func(cmd *cobra.Command, args []string) {
			brand := color.New(color.FgCyan, color.Bold)
			subtle := color.New(color.FgHiBlack)
			for _, name := range network.PresetNames() {
				cfg, _ := network.PresetByName(name)
				brand.Printf("  %-10s", name)
				fmt.Printf("%3d nodes, reach %g", cfg.NodeCount, cfg.ConnectionDistance)
				if cfg.SubBranches {
					subtle.Print("  (forked dendrites)")
				}
				fmt.Println()
			}
		},
	}
}

func run(configFile, schemaFile, preset string, width, height int, seed uint64, debug bool) error {
	logger, err := newLogger(debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := resolveConfig(configFile, schemaFile, preset)
	if err != nil {
		log.Errorw("configuration rejected", "error", err)
		return err
	}
	if width > 0 {
		cfg.WorldWidth = float64(width)
	}
	if height > 0 {
		cfg.WorldHeight = float64(height)
	}

	anim, err := network.NewAnimator(cfg, newRng(seed), log)
	if err != nil {
		// Nothing to animate on. Log it and bow out quietly instead of
		// taking the host down with a crash.
		log.Errorw("animator did not start", "error", err)
		return nil
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Neural Pulse")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(network.NewGame(anim)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	anim.Stop()
	return nil
}

func resolveConfig(configFile, schemaFile, preset string) (*network.Config, error) {
	if configFile != "" {
		return network.LoadConfig(configFile, schemaFile)
	}
	return network.PresetByName(preset)
}

func newRng(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/tomz197/polyroids/internal/cli"
	"github.com/tomz197/polyroids/internal/window"
)

const (
	screenWidth  = 800
	screenHeight = 800
)

var flags cli.Flags

var rootCmd = &cobra.Command{
	Use:          "polyroids-window",
	Short:        "Play asteroids in a desktop window",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags.Bind(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Config()
	if err != nil {
		return err
	}

	logger, closer, err := flags.Logger(os.Stderr, "window")
	if err != nil {
		return err
	}
	defer closer.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Sim.FrameRate)

	logger.Info("window started", "tps", cfg.Sim.FrameRate)
	if err := ebiten.RunGame(window.New(cfg, flags.Rand(), logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

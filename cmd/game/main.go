package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/polyroids/internal/cli"
	"github.com/tomz197/polyroids/internal/loop"
)

var flags cli.Flags

var rootCmd = &cobra.Command{
	Use:   "polyroids",
	Short: "Play asteroids in the terminal",
	Long: `Polyroids is a minimal asteroids game drawn with half-block
characters. Steer with W/A/S/D, fire with SPACE, quit with ESC.`,
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

	// Logs would tear the raw-mode screen, so they go nowhere unless --log-file is set
	logger, closer, err := flags.Logger(io.Discard, "polyroids")
	if err != nil {
		return err
	}
	defer closer.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Config: cfg,
		Rand:   flags.Rand(),
		Logger: logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

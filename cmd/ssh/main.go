package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tomz197/polyroids/internal/cli"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

var (
	flags       cli.Flags
	host        string
	port        string
	hostKeyPath string
)

var rootCmd = &cobra.Command{
	Use:          "polyroids-ssh",
	Short:        "Serve asteroids over SSH",
	Long:         "Every SSH session with a PTY gets its own independent game.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags.Bind(rootCmd)
	rootCmd.Flags().StringVar(&host, "host", config.GetEnv("SSH_HOST", defaultHost), "Listen host (env SSH_HOST)")
	rootCmd.Flags().StringVar(&port, "port", config.GetEnv("SSH_PORT", defaultPort), "Listen port (env SSH_PORT)")
	rootCmd.Flags().StringVar(&hostKeyPath, "host-key", config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath), "Host key path (env SSH_HOST_KEY)")
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

	logger, closer, err := flags.Logger(os.Stderr, "ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger, &sessionSeeds{rng: flags.Rand()}),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("Shutting down server...")

	// Closing the server cancels every session context, which ends each game
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// gameMiddleware runs one independent game per SSH session.
func gameMiddleware(cfg config.Config, logger *log.Logger, seeds *sessionSeeds) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLog := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLog.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			renderer := lipgloss.NewRenderer(sess)
			renderer.SetColorProfile(termenv.ANSI256)

			err := loop.Run(sess.Context(), bufio.NewReader(sess), sess, loop.Options{
				Config:   cfg,
				Rand:     seeds.next(),
				Logger:   sessLog,
				TermSize: sizeTracker.getSize,
				Renderer: renderer,
			})
			if err != nil {
				sessLog.Error("Game error", "err", err)
			}

			sessLog.Info("Session ended")
			next(sess)
		}
	}
}

// sessionSeeds hands every session its own generator, derived from the
// --seed generator so a fixed seed gives a reproducible sequence of games.
type sessionSeeds struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *sessionSeeds) next() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize

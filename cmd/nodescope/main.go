// Command nodescope is an interactive browser and invocation console for
// hierarchically-addressed automation servers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ormasoftchile/nodescope/pkg/config"
	"github.com/ormasoftchile/nodescope/pkg/console"
	"github.com/ormasoftchile/nodescope/pkg/navigator"
	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/simserver"
	"github.com/ormasoftchile/nodescope/pkg/tui"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nodescope",
	Short: "Address-space browser for automation servers",
	Long:  "nodescope — browse a server's object graph, read and write data points, and invoke procedures from an interactive console.",
}

// --- browse ---

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Connect to the configured endpoint and browse interactively",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, s session.Session) error {
		term, err := console.NewTerminal()
		if err != nil {
			return err
		}
		defer term.Close()

		term.Info("Connected.")
		if err := navigator.New(s, term).Run(ctx); err != nil {
			return err
		}
		term.Info("Connection closed. Goodbye.")
		return nil
	})
}

// --- demo ---

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Browse the built-in demonstration space (no configuration needed)",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	srv := simserver.Demo()
	if err := srv.Connect(ctx); err != nil {
		return fmt.Errorf("connect demo space: %w", err)
	}
	defer srv.Disconnect(context.Background())

	term, err := console.NewTerminal()
	if err != nil {
		return err
	}
	defer term.Close()
	return navigator.New(srv, term).Run(ctx)
}

// --- tui ---

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the configured endpoint in a full-screen terminal UI",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	return withSession(tui.Run)
}

// --- schema ---

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for simulated address-space fixtures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := simserver.GenerateFixtureSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nodescope %s (%s)\n", version, commit)
	},
}

// withSession loads and validates the configuration (fail fast, before any
// connection attempt), dials the endpoint's adapter, and guarantees the
// disconnect on every exit path, operator interrupt included.
func withSession(run func(ctx context.Context, s session.Session) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := session.Dial(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	if err := s.Connect(ctx); err != nil {
		return fmt.Errorf("connect %s: %w", cfg.Endpoint, err)
	}
	// Release with a fresh context: the signal that ends navigation must
	// not also cancel the disconnect.
	defer s.Disconnect(context.Background())

	return run(ctx, s)
}

// signalContext takes SIGINT/SIGTERM onto the same release path as quit.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func init() {
	for _, c := range []*cobra.Command{browseCmd, tuiCmd} {
		c.Flags().StringVar(&configPath, "config", "setup.txt", "path to the key=value configuration file")
	}
	rootCmd.AddCommand(browseCmd, demoCmd, tuiCmd, schemaCmd, versionCmd)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cardcheck/internal/card"
	"github.com/jask/cardcheck/internal/config"
	"github.com/jask/cardcheck/internal/logging"
	"github.com/jask/cardcheck/internal/tui"
	"github.com/jask/cardcheck/internal/web"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	showVersion := fs.Bool("version", false, "show version information")
	printConfig := fs.Bool("print-config", false, "print the effective config as TOML and exit")
	mode := fs.String("mode", "", "front-end: tui or web (overrides ui.mode)")
	addr := fs.String("addr", "", "listen address for web mode (overrides web.addr)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		printVersion(stdout)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *mode != "" {
		cfg.UI.Mode = strings.ToLower(*mode)
	}
	if *addr != "" {
		cfg.Web.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if *printConfig {
		return config.Dump(stdout, cfg)
	}

	logger, closer, err := logging.Open(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "mode", cfg.UI.Mode, "version", Version)

	switch cfg.UI.Mode {
	case config.ModeWeb:
		srv, err := web.New(cfg.Web, logger, web.WithVersion(Version))
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	default:
		opts := []tea.ProgramOption{tea.WithContext(ctx)}
		if cfg.UI.AltScreen {
			opts = append(opts, tea.WithAltScreen())
		}
		p := tea.NewProgram(tui.New(card.NewWidget(), logger), opts...)
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cardcheck\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}

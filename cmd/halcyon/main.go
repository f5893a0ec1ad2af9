// Package main is the entry point for the Halcyon configuration tool.
//
// It loads the layered editor configuration, prints an effective summary,
// and can optionally stay running to watch the config files and report
// reloads. Editors embedding the config packages follow the same sequence.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/halcyon-editor/halcyon/internal/config"
	"github.com/halcyon-editor/halcyon/internal/config/notify"
	"github.com/halcyon-editor/halcyon/internal/paths"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath   string
	workspaceDir string
	logLevel     string
	watch        bool
	checkOnly    bool
	showVersion  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("halcyon %s (%s)\n", version, commit)
		return 0
	}

	logger, err := newLogger(opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	slog.SetDefault(logger)

	globalPath := opts.configPath
	if globalPath == "" {
		globalPath = paths.ConfigFile()
	}

	workspaceDir := opts.workspaceDir
	if workspaceDir == "" {
		workspaceDir, _ = os.Getwd()
	}
	workspacePath := paths.WorkspaceConfigFile(workspaceDir)

	if opts.checkOnly {
		return check(globalPath, workspacePath)
	}

	svc := config.NewService(globalPath, workspacePath, config.WithLogger(logger))
	if err := svc.Start(); err != nil {
		// The editor runs with compiled-in defaults when the user config
		// cannot be loaded; surface the reason and continue the same way.
		logger.Warn("using default configuration", "error", err)
		printSummary(config.Default(), globalPath, workspacePath)
		if opts.watch {
			fmt.Fprintln(os.Stderr, "Error: cannot watch, initial load failed")
			return 1
		}
		return 0
	}
	defer svc.Close()

	printSummary(svc.Config(), globalPath, workspacePath)

	if !opts.watch {
		return 0
	}

	sub := svc.Subscribe(func(e notify.Event) {
		switch e.Type {
		case notify.EventReload:
			printSummary(svc.Config(), globalPath, workspacePath)
		case notify.EventError:
			fmt.Fprintf(os.Stderr, "reload failed, keeping previous configuration: %v\n", e.Err)
		}
	})
	defer sub.Unsubscribe()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

// check loads the configuration once and reports the result, for use in
// scripts and editor health checks.
func check(globalPath, workspacePath string) int {
	if _, err := config.Load(globalPath, workspacePath); err != nil {
		fmt.Fprintf(os.Stderr, "config check failed: %v\n", err)
		return 1
	}
	fmt.Println("config ok")
	return 0
}

func printSummary(cfg *config.Config, globalPath, workspacePath string) {
	fmt.Printf("global config:     %s\n", globalPath)
	if workspacePath != "" {
		status := "disabled"
		if cfg.WorkspaceConfig {
			status = "enabled"
		}
		fmt.Printf("workspace config:  %s (%s)\n", workspacePath, status)
	} else {
		fmt.Println("workspace config:  none")
	}
	theme := cfg.Theme
	if theme == "" {
		theme = "(default)"
	}
	fmt.Printf("theme:             %s\n", theme)
	fmt.Printf("line numbers:      %s\n", cfg.Editor.LineNumber)
	fmt.Printf("mouse:             %t\n", cfg.Editor.Mouse)
	for mode, trie := range cfg.Keys {
		fmt.Printf("keys.%-13s %d top-level bindings\n", mode.String()+":", trie.Len())
	}
}

func parseFlags() options {
	var opts options

	pflag.StringVarP(&opts.configPath, "config", "c", "", "path to the global configuration file")
	pflag.StringVarP(&opts.workspaceDir, "workspace", "w", "", "directory to resolve the workspace config from (default: cwd)")
	pflag.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pflag.BoolVar(&opts.watch, "watch", false, "keep running and reload on config changes")
	pflag.BoolVar(&opts.checkOnly, "check", false, "load the configuration once and exit")
	pflag.BoolVarP(&opts.showVersion, "version", "v", false, "show version information")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Halcyon - modal editor configuration tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage: halcyon [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	return opts
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

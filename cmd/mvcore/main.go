// Package main is the entry point for the mvcore command.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/mvcore/internal/app"
	"github.com/dshills/mvcore/internal/config"
	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/observer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	noteType   string
	watch      bool
	metrics    bool
	targets    []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := application.Bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	status := 0
	for _, arg := range opts.targets {
		t, err := parseTarget(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
			continue
		}

		var noteOpts []observer.NotificationOption
		if opts.noteType != "" {
			noteOpts = append(noteOpts, observer.WithType(opts.noteType))
		}
		if err := application.Send(t.core, t.name, t.body, noteOpts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
		}
	}

	if opts.watch {
		if err := watch(application, opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.metrics {
		if err := application.WriteMetrics(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing metrics: %v\n", err)
			return 1
		}
	}

	return status
}

// watch reapplies the configuration whenever it changes, until SIGINT or
// SIGTERM.
func watch(application *app.Application, path string) error {
	if path == "" {
		return fmt.Errorf("-watch requires -config")
	}

	logCfg := application.Config().Log
	format, _ := logging.ParseFormat(logCfg.Format)
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(logCfg.Level),
		Format: format,
		Output: os.Stderr,
	}).WithComponent("main")

	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
		if err != nil {
			// Already logged by the watcher; keep the running cores.
			return
		}
		if err := application.Apply(cfg); err != nil {
			log.Error("apply failed", "error", err)
		}
	}, config.WithWatcherLogger(log))
	if err != nil {
		return err
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	log.Info("watching configuration", "path", w.Path())
	<-signals
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	flag.StringVar(&opts.noteType, "type", "", "Type tag for every notification sent")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the configuration on change until interrupted")
	flag.BoolVar(&opts.metrics, "metrics", false, "Print metrics in Prometheus text format before exiting")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mvcore - multi-core notification dispatch\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mvcore [options] [core:NAME[=body]...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.EnvVars() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mvcore -c mvcore.toml appA:GREET=world      Send GREET to core appA\n")
		fmt.Fprintf(os.Stderr, "  mvcore -c mvcore.toml 'appA:LOGIN={user: a}' Body is parsed as YAML\n")
		fmt.Fprintf(os.Stderr, "  mvcore -c mvcore.toml -watch                Keep cores running, reload on change\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("mvcore %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		if _, ok := logging.LookupLevel(opts.logLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	opts.targets = flag.Args()
	return opts
}

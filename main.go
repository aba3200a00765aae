package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/BurntSushi/toml"

	"github.com/adansuku/solidgo/internal/diagram"
	"github.com/adansuku/solidgo/internal/inspect"
	"github.com/adansuku/solidgo/internal/logging"
	"github.com/adansuku/solidgo/internal/showcase"
	"github.com/adansuku/solidgo/principles/ocp"
)

// fileConfig mirrors the CLI flags; explicit flags win over file values.
type fileConfig struct {
	Formats  []string `toml:"formats"`
	Only     []string `toml:"only"`
	Diagram  string   `toml:"diagram"`
	LogFile  string   `toml:"log_file"`
	LogLevel string   `toml:"log_level"`
}

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "solidgo liskov-substitution -diagram out.mmd". We reorder
	// args so flags come first, then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("solidgo", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file path")
	formatsFlag := fs.String("formats", "text", "comma-separated report formats for the open-closed showcase")
	onlyFlag := fs.String("only", "", "comma-separated principle names to run (alternative to positional arguments)")
	diagramOut := fs.String("diagram", "", "write a Mermaid capability diagram to this file")
	logFile := fs.String("log-file", "", "log file path (empty logs to stderr only)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	// Merge config file under any flags explicitly set on the command line.
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if *configPath != "" {
		var cfg fileConfig
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		if !setFlags["formats"] && len(cfg.Formats) > 0 {
			*formatsFlag = strings.Join(cfg.Formats, ",")
		}
		if !setFlags["only"] && len(cfg.Only) > 0 {
			*onlyFlag = strings.Join(cfg.Only, ",")
		}
		if !setFlags["diagram"] && cfg.Diagram != "" {
			*diagramOut = cfg.Diagram
		}
		if !setFlags["log-file"] && cfg.LogFile != "" {
			*logFile = cfg.LogFile
		}
		if !setFlags["log-level"] && cfg.LogLevel != "" {
			*logLevel = cfg.LogLevel
		}
	}

	// Principle selection: positional names take precedence, then -only.
	selected := positional
	if len(selected) == 0 && *onlyFlag != "" {
		selected = splitList(*onlyFlag)
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Step 1: Build the showcase runners
	runners := showcase.All(ocp.DefaultRegistry(), splitList(*formatsFlag))
	runners, err = selectRunners(runners, selected)
	if err != nil {
		logger.Error("invalid selection", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Run them
	if err := showcase.RunAll(os.Stdout, runners, logger); err != nil {
		logger.Error("showcase run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running showcases: %v\n", err)
		os.Exit(1)
	}

	// Step 3: Optionally diagram the capability relations in this module
	if *diagramOut != "" {
		fmt.Println("Inspecting capability relations...")
		result, err := inspect.Inspect(ctx, ".", inspect.Options{PkgFilter: "principles"}, logger)
		if err != nil {
			logger.Error("inspection failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error inspecting module: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Found %d capabilities, %d implementers, %d relations\n",
			len(result.Capabilities), len(result.Implementers), len(result.Relations))

		// File output: include %%{init:}%% for standalone .mmd rendering
		content := diagram.Mermaid(result, diagram.Options{IncludeInit: true})
		if err := os.WriteFile(*diagramOut, []byte(content), 0o644); err != nil {
			logger.Error("failed to write diagram", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", *diagramOut, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote diagram to %s\n", *diagramOut)
	}
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after positional principle names).
// Flags that take a value (e.g., -diagram out.mmd) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-config": true, "-formats": true, "-only": true,
		"-diagram": true, "-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

// selectRunners keeps only the runners named in names; empty names keeps
// all. Unknown names are an error rather than a silent no-op.
func selectRunners(runners []showcase.Runner, names []string) ([]showcase.Runner, error) {
	if len(names) == 0 {
		return runners, nil
	}
	byName := make(map[string]showcase.Runner, len(runners))
	for _, r := range runners {
		byName[r.Name] = r
	}
	var out []showcase.Runner
	for _, name := range names {
		r, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown principle %q (valid: %s)", name, runnerNames(runners))
		}
		out = append(out, r)
	}
	return out, nil
}

func runnerNames(runners []showcase.Runner) string {
	names := make([]string, len(runners))
	for i, r := range runners {
		names[i] = r.Name
	}
	return strings.Join(names, ", ")
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}

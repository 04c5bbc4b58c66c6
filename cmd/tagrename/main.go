package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/tagrename/internal/config"
	"github.com/handiism/tagrename/internal/rename"
)

func main() {
	// Command line flags
	var (
		templateFlag   = flag.String("template", "", "Filename template (overrides the positional TEMPLATE)")
		configFlag     = flag.String("config", "", "Path to config file")
		applyFlag      = flag.Bool("apply", false, "Perform the renames instead of only printing them")
		noSanitizeFlag = flag.Bool("no-sanitize", false, "Keep filesystem-hostile characters in the new names")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *noSanitizeFlag {
		settings.SanitizeFileNames = false
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	// Template and paths
	template := *templateFlag
	paths := flag.Args()
	if template == "" && len(paths) > 0 {
		template = paths[0]
		paths = paths[1:]
	}
	if template == "" {
		template = settings.Template
	}

	if template == "" || len(paths) == 0 {
		fmt.Println("tagrename - Rename audio files from their tags")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tagrename [flags] TEMPLATE PATH...")
		fmt.Println("  tagrename -template TEMPLATE [flags] PATH...")
		fmt.Println()
		fmt.Println("Template fields:", "%album %artist %title %track %year")
		fmt.Println()
		fmt.Println("By default only the new paths are printed; pass -apply to rename.")
		fmt.Println("For interactive mode, use: tagrename-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	// Plan with progress on stderr; stdout carries only the new paths.
	planner := rename.NewPlanner(settings, nil, func(event rename.ProgressEvent) {
		if event.Level == rename.LevelVerbose && !settings.Verbose {
			return
		}
		if event.Level == rename.LevelError {
			// Errors are reported once, below.
			return
		}
		fmt.Fprintln(os.Stderr, event.Message)
	})

	plans, err := planner.PlanAll(ctx, template, paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, plan := range plans {
		fmt.Println(plan.NewPath)
	}

	if !*applyFlag {
		return
	}

	if err := planner.Apply(ctx, plans); err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stateprimer/primer/internal/catalog"
	"github.com/stateprimer/primer/internal/paginator"
	"github.com/stateprimer/primer/internal/session"
	"github.com/stateprimer/primer/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var demo string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/primer/config.yml)")
	flag.StringVar(&demo, "demo", "", "run a stream demo instead of the TUI: cold or hot")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Primer - State Patterns Tour\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	if demo != "" {
		if err := runDemo(demo); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg appConfig) error {
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// History is optional and best-effort: a broken file disables
	// persistence for this run instead of failing startup.
	var history *session.History
	if cfg.HistoryPath != "" {
		history, err = session.Open(cfg.HistoryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: session history disabled: %v\n", err)
			history = nil
		}
	}

	pager := paginator.New(c)
	if history != nil {
		if last := history.LastSelectedTopic(); last != "" {
			pager.SelectByID(last) // unknown ids are silently ignored
		}
	}
	if cfg.StartTopic != "" {
		pager.SelectByID(cfg.StartTopic)
	}

	nav := tui.NewNavigator(pager, history)
	defer nav.Close()

	pages := []tui.Page{
		tui.NewTopicsPage(nav),
		tui.NewDetailPage(nav),
	}
	if cfg.ShowTravelDemo {
		pages = append(pages, tui.NewTravelPage())
	}

	app := tui.NewApp(nav, pages...)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func loadCatalog(cfg appConfig) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", cfg.CatalogPath, err)
	}
	defer f.Close()
	return catalog.Load(f)
}

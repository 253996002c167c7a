package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/bridge"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/logging/events"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/perf"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/ui"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/viewer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool

	MenuFile   string
	ShowIcons  bool
	Horizontal bool

	Preset      string
	Quality     string
	CameraMode  string
	Grid        bool
	Environment bool
	PerfMonitor bool
	AutoQuality bool
	TargetFPS   int

	MetricsListen string

	// Explicit names the flags the user actually set; those win over a
	// preset file. nil means every field is authoritative.
	Explicit map[string]bool
}

const appTitle = "cosmos explorer"

// sampleThrottle bounds how often renderer performance samples reach the UI.
const sampleThrottle = 250 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program, plus the optional
// metrics listener.
func Run(cfg Config) error {
	defer events.App.Exit("shutdown")

	viewerOpts, err := buildViewerOptions(cfg)
	if err != nil {
		return fmt.Errorf("viewer options: %w", err)
	}

	reg := prometheus.NewRegistry()
	monitor := perf.NewMonitorWithRegistry(reg)
	br := bridge.New(sampleThrottle)
	defer br.Stop()

	viewerOpts.OnPerformanceUpdate = monitor.Observe
	viewerOpts = br.Wire(viewerOpts)
	relay := &viewerOpts
	recompose := func() { viewer.Compose(*relay) }

	items, err := menuItems(cfg.MenuFile, relay, recompose)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}

	// Initial hand-off to the embedding renderer; config changes from the
	// menu recompose, acknowledgements flow back through the bridge.
	recompose()

	navOpts := nav.DefaultOptions()
	navOpts.ShowIcons = cfg.ShowIcons
	navOpts.Vertical = !cfg.Horizontal

	model := ui.NewModel(appTitle, items, navOpts, viewerOpts, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, br)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.MetricsListen == "" {
		_, err = program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	srv := &http.Server{Addr: cfg.MetricsListen, Handler: metricsMux(reg)}
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return err
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		program.Quit()
		return nil
	})
	return g.Wait()
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", perf.Handler(reg))
	return mux
}

// buildViewerOptions layers configuration: defaults, then the preset file,
// then any flags the user set explicitly.
func buildViewerOptions(cfg Config) (viewer.Options, error) {
	opts := viewer.DefaultOptions()
	if cfg.Preset != "" {
		loaded, err := viewer.LoadPreset(cfg.Preset)
		if err != nil {
			return viewer.Options{}, err
		}
		opts = loaded
	}
	set := func(name string) bool {
		return cfg.Explicit == nil || cfg.Explicit[name]
	}
	if set("quality") && cfg.Quality != "" {
		quality, err := viewer.ParseQuality(cfg.Quality)
		if err != nil {
			return viewer.Options{}, err
		}
		opts.Quality = quality
	}
	if set("camera-mode") && cfg.CameraMode != "" {
		mode, err := viewer.ParseCameraMode(cfg.CameraMode)
		if err != nil {
			return viewer.Options{}, err
		}
		opts.CameraMode = mode
	}
	if set("grid") {
		opts.ShowGrid = cfg.Grid
	}
	if set("environment") {
		opts.EnableEnvironment = cfg.Environment
	}
	if set("perf-monitor") {
		opts.ShowPerformanceMonitor = cfg.PerfMonitor
	}
	if set("auto-quality") {
		opts.AutoQualityAdjust = cfg.AutoQuality
	}
	if set("target-fps") && cfg.TargetFPS > 0 {
		opts.TargetFPS = cfg.TargetFPS
	}
	return opts, nil
}

// menuItems loads the navigation tree from the given file, or falls back
// to the built-in viewer menu.
func menuItems(path string, relay *viewer.Options, recompose func()) ([]nav.Item, error) {
	if path == "" {
		return builtinMenu(relay, recompose), nil
	}
	return nav.LoadTree(path)
}

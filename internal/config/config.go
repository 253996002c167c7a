package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/app"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/viewer"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth         = "COSMOS_CONSOLE_WIDTH"
	envHeight        = "COSMOS_CONSOLE_HEIGHT"
	envShowFooter    = "COSMOS_CONSOLE_FOOTER"
	envVerbose       = "COSMOS_CONSOLE_VERBOSE"
	envTrace         = "COSMOS_CONSOLE_TRACE"
	envLogFile       = "COSMOS_CONSOLE_LOG_FILE"
	envMenuFile      = "COSMOS_CONSOLE_MENU_FILE"
	envPreset        = "COSMOS_CONSOLE_PRESET"
	envQuality       = "COSMOS_CONSOLE_QUALITY"
	envCameraMode    = "COSMOS_CONSOLE_CAMERA_MODE"
	envMetricsListen = "COSMOS_CONSOLE_METRICS_LISTEN"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("cosmos-console", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "path to a YAML navigation tree (empty uses the built-in menu)")
	icons := fs.Bool("icons", true, "show per-item icons in the navigation tree")
	horizontal := fs.Bool("horizontal", false, "lay the navigation out in a single row")

	preset := fs.String("preset", envOrDefault(env, envPreset, ""), "path to a YAML viewer preset")
	quality := fs.String("quality", envOrDefault(env, envQuality, ""), "renderer quality tier (low, medium, high, ultra)")
	cameraMode := fs.String("camera-mode", envOrDefault(env, envCameraMode, ""), "camera mode (orbit, fly)")
	grid := fs.Bool("grid", true, "show the reference grid")
	environment := fs.Bool("environment", true, "enable the environment backdrop")
	perfMonitor := fs.Bool("perf-monitor", false, "show the renderer performance monitor")
	autoQuality := fs.Bool("auto-quality", false, "let the renderer adapt quality towards the target FPS")
	targetFPS := fs.Int("target-fps", 60, "target FPS for adaptive quality")
	metricsListen := fs.String("metrics-listen", envOrDefault(env, envMetricsListen, ""), "address for the Prometheus /metrics listener (empty disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *targetFPS <= 0 {
		return Config{}, fmt.Errorf("target-fps must be > 0 (got %d)", *targetFPS)
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := Config{
		App: app.Config{
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			MenuFile:      *menuFile,
			ShowIcons:     *icons,
			Horizontal:    *horizontal,
			Preset:        *preset,
			Quality:       *quality,
			CameraMode:    *cameraMode,
			Grid:          *grid,
			Environment:   *environment,
			PerfMonitor:   *perfMonitor,
			AutoQuality:   *autoQuality,
			TargetFPS:     *targetFPS,
			MetricsListen: *metricsListen,
			Explicit:      explicit,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"verbose":       strconv.FormatBool(*verbose),
			"logFile":       *logFile,
			"menuFile":      *menuFile,
			"preset":        *preset,
			"quality":       *quality,
			"cameraMode":    *cameraMode,
			"metricsListen": *metricsListen,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Quality != "" {
		if _, err := viewer.ParseQuality(cfg.App.Quality); err != nil {
			return err
		}
	}
	if cfg.App.CameraMode != "" {
		if _, err := viewer.ParseCameraMode(cfg.App.CameraMode); err != nil {
			return err
		}
	}
	return nil
}

package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowIcons || cfg.App.Horizontal {
		t.Fatalf("unexpected nav defaults: %+v", cfg.App)
	}
	if !cfg.App.Grid || !cfg.App.Environment || cfg.App.PerfMonitor {
		t.Fatalf("unexpected toggle defaults: %+v", cfg.App)
	}
	if cfg.App.TargetFPS != 60 {
		t.Fatalf("expected target fps 60, got %d", cfg.App.TargetFPS)
	}
	if len(cfg.App.Explicit) != 0 {
		t.Fatalf("expected no explicit flags, got %v", cfg.App.Explicit)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"COSMOS_CONSOLE_WIDTH=100",
		"COSMOS_CONSOLE_QUALITY=low",
		"COSMOS_CONSOLE_FOOTER=1",
	}
	cfg, err := LoadArgs([]string{"-width", "80", "-quality", "ultra"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag to win over env, got %d", cfg.App.Width)
	}
	if cfg.App.Quality != "ultra" {
		t.Fatalf("expected flag quality, got %q", cfg.App.Quality)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected env footer fallback")
	}
	if !cfg.App.Explicit["width"] || !cfg.App.Explicit["quality"] {
		t.Fatalf("expected explicit flags recorded, got %v", cfg.App.Explicit)
	}
	if cfg.App.Explicit["footer"] {
		t.Fatalf("env fallback must not count as explicit")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-target-fps", "0"}, nil); err == nil {
		t.Fatalf("expected error for zero target fps")
	}
}

func TestLoadArgsIgnoresMalformedEnvNumbers(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"COSMOS_CONSOLE_WIDTH=abc"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected fallback width, got %d", cfg.App.Width)
	}
}

func TestValidateQualityAndCameraMode(t *testing.T) {
	cfg, err := LoadArgs([]string{"-quality", "high", "-camera-mode", "orbit"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.App.Quality = "cinematic"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown quality")
	}

	cfg.App.Quality = ""
	cfg.App.CameraMode = "dolly"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown camera mode")
	}
}

func TestLoadArgsRecordsArgv(t *testing.T) {
	args := []string{"-footer"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "-footer" {
		t.Fatalf("expected argv preserved, got %v", cfg.Args)
	}
	if cfg.Flags["footer"] != "true" {
		t.Fatalf("expected resolved flag map, got %v", cfg.Flags)
	}
}

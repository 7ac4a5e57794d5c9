package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-battle/internal/audio"
	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/storage"
)

// withFlags restores the global flags after the test.
func withFlags(t *testing.T) {
	t.Helper()
	saved := []any{flagConfig, flagFPS, flagDBPath, flagMute, flagLogLevel}
	t.Cleanup(func() {
		flagConfig = saved[0].(string)
		flagFPS = saved[1].(int)
		flagDBPath = saved[2].(string)
		flagMute = saved[3].(bool)
		flagLogLevel = saved[4].(string)
	})
}

func TestNewLogger(t *testing.T) {
	withFlags(t)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"warn", false},
		{"error", false},
		{"loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			flagLogLevel = tt.level
			_, err := newLogger()
			if (err != nil) != tt.wantErr {
				t.Errorf("newLogger(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFPSOverride(t *testing.T) {
	withFlags(t)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	flagFPS = 0
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Timing.FPS != 60 {
		t.Errorf("fps = %d, want 60", cfg.Timing.FPS)
	}

	flagFPS = 30
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Timing.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Timing.FPS)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	withFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestOpenAudioSilent(t *testing.T) {
	withFlags(t)
	logger := log.New(io.Discard)

	tests := []struct {
		name    string
		mute    bool
		enabled bool
	}{
		{"muted flag", true, true},
		{"disabled in config", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagMute = tt.mute
			cfg := config.DefaultBattleConfig().Audio
			cfg.Enabled = tt.enabled

			snd, closeAudio := openAudio(cfg, logger)
			defer closeAudio()

			if _, ok := snd.(*audio.Nop); !ok {
				t.Errorf("audio = %T, want *audio.Nop", snd)
			}
		})
	}
}

func TestOpenRecorder(t *testing.T) {
	withFlags(t)
	logger := log.New(io.Discard)

	flagDBPath = ""
	rec, closeRec := openRecorder(logger)
	closeRec()
	if rec != nil {
		t.Errorf("recorder = %T, want nil without --db", rec)
	}

	flagDBPath = filepath.Join(t.TempDir(), "results.db")
	rec, closeRec = openRecorder(logger)
	defer closeRec()
	if _, ok := rec.(*storage.Store); !ok {
		t.Fatalf("recorder = %T, want *storage.Store", rec)
	}
	if _, err := rec.SaveRound(storage.Round{Outcome: storage.OutcomeVictory}); err != nil {
		t.Errorf("SaveRound: %v", err)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-battle/internal/audio"
	"github.com/vovakirdan/monster-battle/internal/battle"
	"github.com/vovakirdan/monster-battle/internal/config"
	"github.com/vovakirdan/monster-battle/internal/session"
	"github.com/vovakirdan/monster-battle/internal/storage"
)

// newLogger builds the process logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "monster-battle",
	}), nil
}

// loadConfig loads the battle config and applies flag overrides.
func loadConfig() (config.BattleConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BattleConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, nil
}

// openAudio starts the sound device. It falls back to a silent sink when
// sound is disabled or the device cannot be opened.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (session.Audio, func()) {
	if flagMute || !cfg.Enabled {
		return &audio.Nop{}, func() {}
	}

	m := audio.NewManager(cfg, logger)
	if err := m.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return &audio.Nop{}, func() {}
	}
	return m, m.Close
}

// openRecorder opens the results database when --db is set. The returned
// recorder is nil otherwise.
func openRecorder(logger *log.Logger) (session.Recorder, func()) {
	if flagDBPath == "" {
		return nil, func() {}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without recording - the game still works
		logger.Warn("could not open results database", "path", flagDBPath, "err", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

// newSession wires a session for cfg. The returned func releases the audio
// device and the database.
func newSession(cfg config.BattleConfig, logger *log.Logger) (*session.Session, func()) {
	snd, closeAudio := openAudio(cfg.Audio, logger)
	rec, closeRec := openRecorder(logger)

	sess := session.New(battle.New(cfg), snd, rec, logger)
	return sess, func() {
		closeAudio()
		closeRec()
	}
}

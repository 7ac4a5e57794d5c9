// Package audio plays the battle's sound: a looping background track and a
// one-shot attack effect, mixed on the beep speaker.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/monster-battle/internal/config"
)

const (
	sampleRate     = beep.SampleRate(44100)
	strikeDuration = 180 * time.Millisecond
	musicTempo     = 100 // BPM
)

// Manager owns the speaker and all streams.
type Manager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	attack      *beep.Buffer // Decoded attack sound; nil means synthesized
	muted       bool
	applied     bool // Whether muted has been pushed to the streams
	initialized bool
}

// NewManager creates a manager. Nothing is played until Init succeeds.
func NewManager(cfg config.AudioConfig, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	mixer := &beep.Mixer{}
	return &Manager{
		cfg:    cfg,
		logger: logger,
		mixer:  mixer,
		master: newVolume(mixer, cfg.Volume),
	}
}

// Init opens the audio device, loads the sounds and starts the music.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open device: %w", err)
	}

	if m.cfg.AttackSound != "" {
		buf, err := loadWAV(m.cfg.AttackSound)
		if err != nil {
			m.logger.Warn("using synthesized attack sound", "path", m.cfg.AttackSound, "err", err)
		} else {
			m.attack = buf
		}
	}

	var music beep.Streamer = NewMusicGenerator(sampleRate, musicTempo)
	if m.cfg.Music != "" {
		buf, err := loadWAV(m.cfg.Music)
		if err != nil {
			m.logger.Warn("using synthesized music", "path", m.cfg.Music, "err", err)
		} else {
			music = beep.Loop(-1, buf.Streamer(0, buf.Len()))
		}
	}
	m.music = &beep.Ctrl{Streamer: music}
	m.mixer.Add(m.music)

	speaker.Play(m.master)
	m.initialized = true
	m.applied = false
	return nil
}

// Close stops all sound.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	m.initialized = false
}

// PlayAttack starts one attack sound. Overlapping strikes are mixed.
func (m *Manager) PlayAttack() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	var s beep.Streamer
	if m.attack != nil {
		s = m.attack.Streamer(0, m.attack.Len())
	} else {
		s = NewStrikeGenerator(sampleRate, strikeDuration)
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// UpdateMusic is called once per frame. The speaker streams on its own
// goroutine, so this only pushes a changed mute state to the streams.
func (m *Manager) UpdateMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.applied {
		return
	}

	speaker.Lock()
	m.music.Paused = m.muted
	m.master.Silent = m.muted || m.cfg.Volume <= 0
	speaker.Unlock()
	m.applied = true
}

// ToggleMute flips the mute state and returns the new value.
// It takes effect on the next UpdateMusic.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	m.applied = false
	return m.muted
}

// Muted reports the current mute state.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// loadWAV decodes a WAV file into a buffer at the speaker's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}

// newVolume wraps s with a linear gain in [0, 1].
// math.Log2(0) is -Inf, so zero gain is silence.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Nop is a silent audio sink for --mute or when no device is available.
type Nop struct {
	muted bool
}

func (n *Nop) PlayAttack()  {}
func (n *Nop) UpdateMusic() {}

func (n *Nop) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}

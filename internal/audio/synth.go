package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// StrikeGenerator produces the attack sound: a falling tone over a burst of
// noise with an exponential decay. It ends after its duration.
type StrikeGenerator struct {
	sr       beep.SampleRate
	pos      int
	duration int
	seed     uint32
}

// NewStrikeGenerator creates a strike of the given length.
func NewStrikeGenerator(sr beep.SampleRate, d time.Duration) *StrikeGenerator {
	return &StrikeGenerator{
		sr:       sr,
		duration: sr.N(d),
		seed:     0x2545f491,
	}
}

func (g *StrikeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * 25)
		freq := 220 * math.Exp(-t*6)
		tone := math.Sin(2 * math.Pi * freq * t)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := 0.6 * env * (0.7*tone + 0.3*noise)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StrikeGenerator) Err() error {
	return nil
}

// Notes of the background loop, in Hz
var musicNotes = []float64{110, 130.81, 164.81, 130.81, 98, 123.47, 146.83, 123.47}

// MusicGenerator produces the background loop: a soft bass arpeggio with a
// pulse on every beat. It never ends.
type MusicGenerator struct {
	sr    beep.SampleRate
	pos   int
	beat  int // Samples per note
	phase float64
}

// NewMusicGenerator creates a music loop at the given tempo.
func NewMusicGenerator(sr beep.SampleRate, bpm float64) *MusicGenerator {
	if bpm <= 0 {
		bpm = 120
	}
	return &MusicGenerator{
		sr:   sr,
		beat: sr.N(time.Duration(float64(time.Minute) / bpm)),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := musicNotes[(g.pos/g.beat)%len(musicNotes)]
		inBeat := float64(g.pos%g.beat) / float64(g.beat)

		g.phase += note / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		env := 0.4 + 0.6*math.Exp(-inBeat*4)
		sample := 0.2 * env * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}

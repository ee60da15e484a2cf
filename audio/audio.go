// Package audio plays short tones for gameplay cues.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"snake-game/game/manager"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq      = 880
	eatLength    = 50 * time.Millisecond
	gameOverFreq = 220
	gameOverLen  = 400 * time.Millisecond
)

// Cues implements session.Notifier with sine beeps.
type Cues struct {
	play func(beep.Streamer)
	log  zerolog.Logger
}

// New initialises the speaker. Failure is returned so the caller can run
// without sound.
func New(log zerolog.Logger) (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Cues{
		play: func(s beep.Streamer) { speaker.Play(s) },
		log:  log,
	}, nil
}

func (c *Cues) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		c.log.Warn().Err(err).Float64("freq", freq).Msg("tone")
		return
	}
	c.play(beep.Take(sampleRate.N(d), sine))
}

func (c *Cues) FoodEaten() {
	c.tone(eatFreq, eatLength)
}

func (c *Cues) GameOver(reason manager.TerminationReason) {
	if reason == manager.ReasonQuit {
		return
	}
	c.tone(gameOverFreq, gameOverLen)
}

// Close stops playback.
func (c *Cues) Close() {
	speaker.Close()
}

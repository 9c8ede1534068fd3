package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	PopDuration      = 150 * time.Millisecond
	PopCrackle       = 90 * time.Millisecond
	PopAttack        = 2 * time.Millisecond
	PopRelease       = 80 * time.Millisecond
	PopStartFreq     = 880.0
	PopEndFreq       = 440.0
	BufferDuration   = 100 * time.Millisecond
	DefaultRate      = beep.SampleRate(48000)
	largeBurstCutoff = 100
)

// Pop is the sound of a confetti cannon: a short noise crackle over a
// falling chirp. Bursts of more than a hundred particles get a second,
// lower chirp.
func Pop(rate beep.SampleRate, volume float64, count int) beep.Streamer {
	sweep := (PopEndFreq - PopStartFreq) / PopDuration.Seconds()

	crackle := NewEnvelope(
		NewOscillator(0, 0, PopCrackle, WaveNoise, rate),
		PopCrackle, PopAttack, PopRelease, rate)
	chirp := NewEnvelope(
		NewOscillator(PopStartFreq, sweep, PopDuration, WaveSine, rate),
		PopDuration, PopAttack, PopDuration/2, rate)

	layers := []beep.Streamer{
		withVolume(crackle, 0.5),
		withVolume(chirp, 0.5),
	}
	if count > largeBurstCutoff {
		boom := NewEnvelope(
			NewOscillator(PopEndFreq/2, sweep/2, PopDuration, WaveSquare, rate),
			PopDuration, PopAttack, PopDuration/2, rate)
		layers = append(layers, withVolume(boom, 0.25))
	}

	return withVolume(beep.Mix(layers...), volume)
}

// Player plays sounds on the default output device.
type Player struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer

	closeOnce sync.Once
}

// NewPlayer opens the speaker at the given sample rate.
func NewPlayer(rate beep.SampleRate, volume float64) (*Player, error) {
	if err := speaker.Init(rate, rate.N(BufferDuration)); err != nil {
		return nil, err
	}

	p := &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues s on the mixer.
func (p *Player) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayPop plays the explosion sound for a burst of count particles.
func (p *Player) PlayPop(count int) {
	p.Play(Pop(p.rate, p.volume, count))
}

// Close releases the audio device.
func (p *Player) Close() {
	p.closeOnce.Do(speaker.Close)
}

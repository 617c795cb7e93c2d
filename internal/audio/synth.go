package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone. A non-zero sweep glides the
// frequency linearly towards freq+sweep over the duration.
type oscillator struct {
	wave     Wave
	freq     float64
	sweep    float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(wave Wave, freq, sweep float64, d time.Duration, rate beep.SampleRate) *oscillator {
	return &oscillator{
		wave:     wave,
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(d),
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + o.sweep*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	if releaseStart < e.attack {
		releaseStart = e.attack
	}

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is an enveloped oscillator.
func tone(wave Wave, freq, sweep float64, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(wave, freq, sweep, d, rate), d, attack, release, rate)
}

// newVolume scales a stream linearly. Zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueStreamer builds the unity-gain sound for a cue. Unknown cues yield nil.
func cueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueLaunch:
		// Rock cracking: a short noise burst over a falling thud.
		return beep.Mix(
			newVolume(tone(WaveNoise, 0, 0, 180*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond, rate), 0.5),
			newVolume(tone(WaveSine, 140, -80, 220*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate), 0.5),
		)
	case CueReward:
		// Two rising square notes, B5 then E6.
		return newVolume(beep.Seq(
			tone(WaveSquare, 987.77, 0, 80*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, rate),
			tone(WaveSquare, 1318.51, 0, 220*time.Millisecond, 2*time.Millisecond, 180*time.Millisecond, rate),
		), 0.6)
	case CueCombust:
		// Long descending saw with a noise tail.
		return beep.Mix(
			newVolume(tone(WaveSaw, 420, -360, 600*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, rate), 0.5),
			newVolume(tone(WaveNoise, 0, 0, 700*time.Millisecond, 5*time.Millisecond, 600*time.Millisecond, rate), 0.4),
		)
	default:
		return nil
	}
}

// musicBar is one pass of the background loop: a minor arpeggio over a bass pulse.
var musicBar = []float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63, 196.00, 246.94}

const musicNote = 180 * time.Millisecond

// musicStreamer returns an endless background loop.
func musicStreamer(rate beep.SampleRate) beep.Streamer {
	i := 0
	return beep.Iterate(func() beep.Streamer {
		freq := musicBar[i%len(musicBar)]
		i++
		return beep.Mix(
			newVolume(tone(WaveSine, freq, 0, musicNote, 10*time.Millisecond, 90*time.Millisecond, rate), 0.6),
			newVolume(tone(WaveSquare, freq/4, 0, musicNote, 5*time.Millisecond, 60*time.Millisecond, rate), 0.15),
		)
	})
}

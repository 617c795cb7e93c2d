package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/astrohop/internal/config"
)

// Beep is a Sink that synthesizes sounds and plays them through the speaker.
type Beep struct {
	cfg   config.AudioConfig
	rate  beep.SampleRate
	lock  sync.Locker
	mixer *beep.Mixer
	music map[Track]*beep.Ctrl
}

// speakerLock guards the mixer against the speaker goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// NewBeep opens the audio device and starts the mixer.
func NewBeep(cfg config.AudioConfig) (*Beep, error) {
	b := newBeep(cfg, speakerLock{})
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	return b, nil
}

func newBeep(cfg config.AudioConfig, lock sync.Locker) *Beep {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}
	return &Beep{
		cfg:   cfg,
		rate:  rate,
		lock:  lock,
		mixer: &beep.Mixer{},
		music: make(map[Track]*beep.Ctrl),
	}
}

// Play mixes a one-shot cue into the output.
func (b *Beep) Play(c Cue) {
	s := cueStreamer(c, b.rate)
	if s == nil {
		return
	}
	s = newVolume(s, b.cfg.EffectsVolume*b.cfg.MasterVolume)

	b.lock.Lock()
	defer b.lock.Unlock()
	b.mixer.Add(s)
}

// StartLoop starts a track from the beginning, replacing any earlier instance.
func (b *Beep) StartLoop(t Track) {
	if t != TrackMusic {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(musicStreamer(b.rate), b.cfg.MusicVolume*b.cfg.MasterVolume)}

	b.lock.Lock()
	defer b.lock.Unlock()
	if old, ok := b.music[t]; ok {
		old.Streamer = nil
	}
	b.music[t] = ctrl
	b.mixer.Add(ctrl)
}

// StopLoop silences a track. A nil Ctrl streamer is dropped by the mixer.
func (b *Beep) StopLoop(t Track) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if ctrl, ok := b.music[t]; ok {
		ctrl.Streamer = nil
		delete(b.music, t)
	}
}

// Close stops all sound and releases the device.
func (b *Beep) Close() {
	b.lock.Lock()
	for t, ctrl := range b.music {
		ctrl.Streamer = nil
		delete(b.music, t)
	}
	b.mixer.Clear()
	b.lock.Unlock()
	speaker.Close()
}

// Open returns a speaker-backed Sink, or Nop when audio is disabled.
// The returned close function is always safe to call.
func Open(cfg config.AudioConfig) (Sink, func(), error) {
	if !cfg.Enabled {
		return Nop{}, func() {}, nil
	}
	b, err := NewBeep(cfg)
	if err != nil {
		return Nop{}, func() {}, err
	}
	return b, b.Close, nil
}

// Package audio plays Astro Hop's sound cues and background music.
//
// The game only talks to a Sink. Beep renders synthesized sounds through the
// system speaker, Nop discards everything, and Recorder keeps a log for tests.
package audio

import "sync"

// Cue is a one-shot sound effect.
type Cue string

const (
	CueLaunch  Cue = "explode" // Player leaves an asteroid, which breaks apart
	CueReward  Cue = "reward"  // Gem collected
	CueCombust Cue = "combust" // Player hit by a meteor
)

// Track is a looping piece of music.
type Track string

// TrackMusic is the background loop.
const TrackMusic Track = "music"

// Sink receives audio requests from the game.
type Sink interface {
	Play(c Cue)
	StartLoop(t Track)
	StopLoop(t Track)
}

// Nop is a Sink that discards every request.
type Nop struct{}

func (Nop) Play(Cue)        {}
func (Nop) StartLoop(Track) {}
func (Nop) StopLoop(Track)  {}

// Event is one request seen by a Recorder.
type Event struct {
	Op   string // "play", "start" or "stop"
	Name string
}

// Recorder is a Sink that remembers what it was asked to do.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	playing map[Track]bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{playing: make(map[Track]bool)}
}

func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Op: "play", Name: string(c)})
}

func (r *Recorder) StartLoop(t Track) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Op: "start", Name: string(t)})
	r.playing[t] = true
}

func (r *Recorder) StopLoop(t Track) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Op: "stop", Name: string(t)})
	r.playing[t] = false
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Op == "play" && ev.Name == string(c) {
			n++
		}
	}
	return n
}

// Playing reports whether t was started and not stopped since.
func (r *Recorder) Playing(t Track) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playing[t]
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

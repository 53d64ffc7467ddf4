package ph

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween/ease"
)

// SoundHandle identifies a playing or scheduled sound. Zero is never a valid
// handle and is returned when nothing could be played.
type SoundHandle uint32

// SoundPlayer starts and stops named sounds. Play with at > now schedules the
// start. Both calls are fire-and-forget.
type SoundPlayer interface {
	Play(name string, loop bool, at float64) SoundHandle
	Stop(h SoundHandle)
}

// SoundFader is implemented by players that can ramp voices. Callers holding
// a SoundPlayer check for it with a type assertion.
type SoundFader interface {
	// Crossfade fades from out and to in over seconds, closing from once it
	// is silent. Either handle may be zero.
	Crossfade(from, to SoundHandle, seconds float64)
}

// Voice is the playback primitive behind a SoundHandle. *audio.Player
// satisfies it.
type Voice interface {
	Play()
	Pause()
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// VoiceFactory creates a voice for a named asset. It returns false when the
// asset is unknown.
type VoiceFactory func(name string, loop bool) (Voice, bool)

type voice struct {
	v       Voice
	name    string
	startAt float64
	started bool
	loop    bool
	volume  float64
	fade    *Tween
	// stopAfterFade closes the voice once its fade reaches zero.
	stopAfterFade bool
}

// Mixer implements SoundPlayer with scheduling and crossfades. Call Update
// once per tick with the current time.
type Mixer struct {
	clock   Clock
	factory VoiceFactory
	voices  map[SoundHandle]*voice
	nextID  SoundHandle
	master  float64
	lastNow float64
	debug   bool
}

// NewMixer creates a mixer that builds voices with factory.
func NewMixer(clock Clock, factory VoiceFactory) *Mixer {
	return &Mixer{
		clock:   clock,
		factory: factory,
		voices:  make(map[SoundHandle]*voice),
		master:  1,
		lastNow: clock.Now(),
	}
}

// NewAudioVoiceFactory returns a VoiceFactory that creates ebiten audio
// players for sounds decoded into store.
func NewAudioVoiceFactory(ctx *audio.Context, store *Store) VoiceFactory {
	return func(name string, loop bool) (Voice, bool) {
		pcm, ok := store.Sound(name)
		if !ok {
			return nil, false
		}
		if !loop {
			return ctx.NewPlayerFromBytes(pcm), true
		}
		p, err := ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
		if err != nil {
			log.Printf("ph: loop %q: %v", name, err)
			return nil, false
		}
		return p, true
	}
}

// SetDebugMode enables or disables tracing of missing assets on stderr.
func (m *Mixer) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// SetMasterVolume scales every voice. Values are clamped to [0, 1].
func (m *Mixer) SetMasterVolume(v float64) {
	m.master = clamp01(v)
	for _, vc := range m.voices {
		vc.v.SetVolume(vc.volume * m.master)
	}
}

// Play starts name now, or at time at if that lies in the future.
func (m *Mixer) Play(name string, loop bool, at float64) SoundHandle {
	if name == "" || m.factory == nil {
		return 0
	}
	v, ok := m.factory(name, loop)
	if !ok {
		if m.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[ph] sound %q not loaded\n", name)
		}
		return 0
	}
	m.nextID++
	h := m.nextID
	vc := &voice{v: v, name: name, startAt: at, loop: loop, volume: 1}
	m.voices[h] = vc
	v.SetVolume(m.master)
	if at <= m.clock.Now() {
		vc.started = true
		v.Play()
	}
	return h
}

// Stop stops a playing voice or cancels a scheduled one. Unknown handles are
// ignored.
func (m *Mixer) Stop(h SoundHandle) {
	vc, ok := m.voices[h]
	if !ok {
		return
	}
	m.release(h, vc)
}

// StopAll stops every voice.
func (m *Mixer) StopAll() {
	for h, vc := range m.voices {
		m.release(h, vc)
	}
}

// SetVolume sets a voice's volume immediately, cancelling any fade.
func (m *Mixer) SetVolume(h SoundHandle, v float64) {
	vc, ok := m.voices[h]
	if !ok {
		return
	}
	vc.fade = nil
	vc.volume = clamp01(v)
	vc.v.SetVolume(vc.volume * m.master)
}

// Crossfade fades from out and to in over seconds. from is closed once
// silent. Either handle may be zero.
func (m *Mixer) Crossfade(from, to SoundHandle, seconds float64) {
	if vc, ok := m.voices[from]; ok {
		vc.fade = NewTween(&vc.volume, 0, float32(seconds), ease.Linear)
		vc.stopAfterFade = true
	}
	if vc, ok := m.voices[to]; ok {
		vc.volume = 0
		vc.v.SetVolume(0)
		vc.fade = NewTween(&vc.volume, 1, float32(seconds), ease.Linear)
		vc.stopAfterFade = false
	}
}

// Playing reports whether h refers to a voice that is scheduled or audible.
func (m *Mixer) Playing(h SoundHandle) bool {
	_, ok := m.voices[h]
	return ok
}

// Update starts due voices, advances fades and drops finished one-shots.
func (m *Mixer) Update(now float64) {
	dt := now - m.lastNow
	if dt < 0 {
		dt = 0
	}
	m.lastNow = now
	for h, vc := range m.voices {
		if !vc.started {
			if now < vc.startAt {
				continue
			}
			vc.started = true
			vc.v.Play()
		}
		if vc.fade != nil {
			done := vc.fade.Update(dt)
			vc.v.SetVolume(vc.volume * m.master)
			if done {
				vc.fade = nil
				if vc.stopAfterFade {
					m.release(h, vc)
					continue
				}
			}
		}
		if !vc.loop && !vc.v.IsPlaying() {
			m.release(h, vc)
		}
	}
}

func (m *Mixer) release(h SoundHandle, vc *voice) {
	vc.v.Pause()
	if err := vc.v.Close(); err != nil {
		log.Printf("ph: close sound %q: %v", vc.name, err)
	}
	delete(m.voices, h)
}

var (
	_ SoundPlayer = (*Mixer)(nil)
	_ SoundFader  = (*Mixer)(nil)
)

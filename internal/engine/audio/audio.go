// Package audio plays the hit sound effect.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/logger"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Generated hit tone.
const (
	HitToneFrequency = 880.0
	HitToneDuration  = 80 * time.Millisecond
)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and the decoded hit sound.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	hit *beep.Buffer

	// SFX mixer for overlapping hits
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences playback without touching the volume levels.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// Muted reports whether playback is silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// EffectiveVolume is the linear gain applied to effects.
func (m *Manager) EffectiveVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.muted {
		return 0
	}
	return m.masterVolume * m.sfxVolLevel
}

// volumeToGain converts a 0-1 linear volume to an effects.Volume exponent for base 2.
func volumeToGain(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// LoadHitSound decodes a WAV file as the hit sound. An empty path selects the
// generated tone. A file that fails to decode falls back to the tone too.
func (m *Manager) LoadHitSound(path string) error {
	var (
		buf *beep.Buffer
		err error
	)
	if path != "" {
		buf, err = m.decodeFile(path)
		if err != nil {
			logger.Warn("hit sound unavailable, using tone", zap.String("path", path), zap.Error(err))
		}
	}
	if buf == nil {
		buf, err = m.tone(HitToneFrequency, HitToneDuration)
		if err != nil {
			return fmt.Errorf("generate hit tone: %w", err)
		}
	}

	m.mu.Lock()
	m.hit = buf
	m.mu.Unlock()
	logger.Debug("hit sound ready", zap.Int("samples", buf.Len()))
	return nil
}

// HitSamples returns the length of the loaded hit sound in samples.
func (m *Manager) HitSamples() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.hit == nil {
		return 0
	}
	return m.hit.Len()
}

func (m *Manager) decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		s = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return buf, nil
}

func (m *Manager) tone(freq float64, d time.Duration) (*beep.Buffer, error) {
	sine, err := generators.SineTone(m.sampleRate, freq)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(m.sampleRate.N(d), sine))
	return buf, nil
}

// PlayHit plays the hit sound over anything already playing.
func (m *Manager) PlayHit() error {
	m.mu.RLock()
	initialized := m.initialized
	hit := m.hit
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if hit == nil {
		return errors.New("no hit sound loaded")
	}
	vol := m.EffectiveVolume()
	if vol <= 0 {
		return nil
	}

	speaker.Lock()
	m.sfxMixer.Add(&effects.Volume{
		Streamer: hit.Streamer(0, hit.Len()),
		Base:     2,
		Volume:   volumeToGain(vol),
	})
	speaker.Unlock()
	return nil
}

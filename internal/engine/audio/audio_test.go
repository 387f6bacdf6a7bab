package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
)

func TestVolumeToGain(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0.0, -100},
	}
	for _, tt := range tests {
		if got := volumeToGain(tt.vol); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("volumeToGain(%f) = %f, want %f", tt.vol, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.GetMasterVolume())
	}
	if m.GetSFXVolume() != 1.0 {
		t.Errorf("default SFX volume = %f, want 1.0", m.GetSFXVolume())
	}
	if m.IsInitialized() {
		t.Error("manager initialized before Init")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	m.SetSFXVolume(0.5)
	if got := m.EffectiveVolume(); got != 0.25 {
		t.Errorf("effective volume = %f, want 0.25", got)
	}

	m.SetMasterVolume(2.0)
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.GetMasterVolume())
	}
	m.SetSFXVolume(-1.0)
	if m.GetSFXVolume() != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.GetSFXVolume())
	}
}

func TestMutedSilences(t *testing.T) {
	m := New()
	m.SetMuted(true)
	if m.EffectiveVolume() != 0 {
		t.Error("muted manager has non-zero volume")
	}
	m.SetMuted(false)
	if m.EffectiveVolume() != 1 {
		t.Error("unmuted manager lost its volume")
	}
}

func TestLoadHitSoundTone(t *testing.T) {
	m := New()
	if err := m.LoadHitSound(""); err != nil {
		t.Fatalf("LoadHitSound: %v", err)
	}
	want := DefaultSampleRate.N(HitToneDuration)
	if got := m.HitSamples(); got != want {
		t.Errorf("tone samples = %d, want %d", got, want)
	}
}

func TestLoadHitSoundMissingFileFallsBack(t *testing.T) {
	m := New()
	if err := m.LoadHitSound(filepath.Join(t.TempDir(), "missing.wav")); err != nil {
		t.Fatalf("LoadHitSound: %v", err)
	}
	if m.HitSamples() == 0 {
		t.Error("no fallback tone loaded")
	}
}

func TestLoadHitSoundWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hit.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}
	sine, err := generators.SineTone(format.SampleRate, 440)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.Encode(f, beep.Take(1000, sine), format); err != nil {
		t.Fatal(err)
	}
	f.Close()

	m := New()
	if err := m.LoadHitSound(path); err != nil {
		t.Fatalf("LoadHitSound: %v", err)
	}
	if got := m.HitSamples(); got != 1000 {
		t.Errorf("wav samples = %d, want 1000", got)
	}
}

func TestPlayHitBeforeInit(t *testing.T) {
	m := New()
	if err := m.PlayHit(); err != ErrNotInitialized {
		t.Errorf("PlayHit error = %v, want ErrNotInitialized", err)
	}
}

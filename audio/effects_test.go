package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/sun-rise-set/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, rate)

	samples := drain(osc)
	assert.Len(t, samples, rate.N(100*time.Millisecond))
	assert.NoError(t, osc.Err())

	for i, s := range samples {
		require.LessOrEqual(t, math.Abs(s[0]), 1.0, "sample %d", i)
		require.Equal(t, s[0], s[1], "sample %d should be mono", i)
	}
}

func TestOscillatorStartsAtZero(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, beep.SampleRate(44100))
	buf := make([][2]float64, 1)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 1, n)
	assert.Equal(t, 0.0, buf[0][0])
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(env)
	require.Len(t, samples, 100)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0], "sustain is full level")
	assert.InDelta(t, 0.5, samples[90][0], 1e-9)
	assert.InDelta(t, 0.05, samples[99][0], 1e-9)
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewOscillator(440, 10*time.Millisecond, rate), 0)
	for _, v := range drain(s) {
		require.Equal(t, 0.0, v[0])
	}
}

func TestChimeSoundLength(t *testing.T) {
	rate := beep.SampleRate(constants.ChimeSampleRate)
	samples := drain(NewChimeSound(rate))

	want := rate.N(constants.ChimeNote1Duration) + rate.N(constants.ChimeNote2Duration)
	assert.Len(t, samples, want)

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, constants.ChimeVolume+1e-9)
}

// TestChimeGracefulDegradation verifies the chime is safe to use without a device
func TestChimeGracefulDegradation(t *testing.T) {
	c := NewChime()
	assert.NotPanics(t, func() {
		c.Play()
		c.OnArrive(3)
		c.Cleanup()
	})
}

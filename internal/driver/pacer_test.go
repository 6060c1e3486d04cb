package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalPacerFiresOnce(t *testing.T) {
	p := &IntervalPacer{Interval: time.Millisecond}
	fired := make(chan struct{})
	p.RequestFrame(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("frame callback never fired")
	}
}

func TestIntervalPacerCancelPreventsFiring(t *testing.T) {
	p := &IntervalPacer{Interval: 50 * time.Millisecond}
	fired := make(chan struct{}, 1)
	cancel := p.RequestFrame(func() { fired <- struct{}{} })
	cancel()

	select {
	case <-fired:
		t.Fatal("cancelled frame callback fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestNewIntervalPacerDefaultsTo60FPS(t *testing.T) {
	assert.Equal(t, time.Second/60, NewIntervalPacer(0).Interval)
	assert.Equal(t, time.Second/30, NewIntervalPacer(30).Interval)
}

func TestManualPacerCancelOnlyClearsOwnRequest(t *testing.T) {
	p := &ManualPacer{}
	ran := 0
	cancel := p.RequestFrame(func() { ran++ })

	// A newer request supersedes the old one; the stale cancel must not
	// revoke it.
	p.RequestFrame(func() { ran += 10 })
	cancel()

	require.True(t, p.Fire())
	assert.Equal(t, 10, ran)
	assert.False(t, p.Fire())
}

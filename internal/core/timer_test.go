package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstPollIsDue(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first poll should report a due tick")
	}
	// At 1 TPS the next tick is a full second away.
	if fs.ShouldStep() {
		t.Fatal("second immediate poll should not be due")
	}
}

func TestFixedStepSetTPSRetargetsInterval(t *testing.T) {
	fs := NewFixedStep(60)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, want %v", fs.step, time.Second/60)
	}

	fs.SetTPS(10)
	if fs.step != time.Second/10 {
		t.Fatalf("after SetTPS(10) step = %v, want %v", fs.step, time.Second/10)
	}

	// Non-positive rates fall back to 60 TPS.
	fs.SetTPS(0)
	if fs.step != time.Second/60 {
		t.Fatalf("after SetTPS(0) step = %v, want %v", fs.step, time.Second/60)
	}
	if NewFixedStep(-5).step != time.Second/60 {
		t.Fatal("negative TPS should default to 60")
	}
}

func TestFixedStepResetDropsAccumulatedTime(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first poll should report a due tick")
	}

	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("poll right after Reset should not be due")
	}
}

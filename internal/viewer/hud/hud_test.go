package hud

import "testing"

func TestLinesIncludesStepAndScaleFactor(t *testing.T) {
	o := NewOverlay(800, 600)
	lines := o.Lines(Status{Step: 42, T: 1.5, A: 2.25, PhysicalTime: 0.75, SliceZ: 3, GridSize: 32})

	found := map[string]bool{}
	for _, l := range lines {
		found[l] = true
	}
	if !found["step: 42"] {
		t.Errorf("expected a step line, got %v", lines)
	}
	if !found["a: 2.250000"] {
		t.Errorf("expected a scale-factor line, got %v", lines)
	}
	if !found["slice z: 3 / 31"] {
		t.Errorf("expected slice line with max index 31, got %v", lines)
	}
}

func TestPlaybackTextReflectsPlayingState(t *testing.T) {
	o := NewOverlay(800, 600)
	if got := o.PlaybackText(Status{Playing: true}); got != "PLAYING (P to pause)" {
		t.Errorf("PlaybackText(playing) = %q", got)
	}
	if got := o.PlaybackText(Status{Playing: false}); got == "PLAYING (P to pause)" {
		t.Errorf("PlaybackText(paused) should differ from playing text")
	}
}

package playback

import "testing"

func TestPlayerStepNextClampsAtMax(t *testing.T) {
	p := NewPlayer(10, 2)
	p.Update(0, false, true, false)
	p.Update(0, false, true, false)
	p.Update(0, false, true, false)
	if p.Index() != 2 {
		t.Errorf("Index = %d, want 2 (clamped at max)", p.Index())
	}
}

func TestPlayerStepPrevClampsAtZero(t *testing.T) {
	p := NewPlayer(10, 5)
	p.Update(0, false, false, true)
	if p.Index() != 0 {
		t.Errorf("Index = %d, want 0 (clamped at zero)", p.Index())
	}
}

func TestPlayerAutoplayAdvances(t *testing.T) {
	p := NewPlayer(10, 5) // 1 step per 0.1s
	p.Update(0.25, true, false, false)
	if p.Index() != 2 {
		t.Errorf("Index = %d, want 2 after 0.25s at 10 steps/sec", p.Index())
	}
}

func TestPlayerStepRequestResetsAutoplayAccumulator(t *testing.T) {
	p := NewPlayer(10, 5)
	p.Update(0.09, true, false, false)
	p.Update(0, false, true, false)
	p.Update(0.09, true, false, false)
	if p.Index() != 1 {
		t.Errorf("Index = %d, want 1 (manual step + no carried-over autoplay remainder)", p.Index())
	}
}

func TestPlayerSetMaxClampsCurrentIndex(t *testing.T) {
	p := NewPlayer(10, 5)
	p.Update(0, false, true, false)
	p.Update(0, false, true, false)
	p.SetMax(1)
	if p.Index() != 1 {
		t.Errorf("Index = %d, want 1 after SetMax(1) clamps down", p.Index())
	}
}

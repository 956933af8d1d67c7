package kernel

import (
	"sync/atomic"
	"testing"
)

func TestLaunchVisitsEveryIndexExactlyOnce(t *testing.T) {
	n := 137
	var counts [137]int32

	Launch(n, Workers(), func(x int) {
		atomic.AddInt32(&counts[x], 1)
	})

	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestReduceSumsAllContributions(t *testing.T) {
	n := 1000
	got := Reduce(n, Workers(), func(x int) float64 {
		return float64(x)
	})

	want := float64(n*(n-1)) / 2
	if got != want {
		t.Errorf("Reduce sum = %v, want %v", got, want)
	}
}

func TestReduceDeterministicForFixedSchedule(t *testing.T) {
	n := 500
	body := func(x int) float64 { return float64(x%7) * 1.5 }

	first := Reduce(n, 4, body)
	for i := 0; i < 5; i++ {
		if got := Reduce(n, 4, body); got != first {
			t.Errorf("Reduce not deterministic across runs: %v != %v", got, first)
		}
	}
}

func TestLaunchSingleWorker(t *testing.T) {
	sum := 0
	Launch(10, 1, func(x int) { sum += x })
	if sum != 45 {
		t.Errorf("expected 45, got %d", sum)
	}
}

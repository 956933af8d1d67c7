package slice

import rl "github.com/gen2brain/raylib-go/raylib"

// Heat maps v, scaled against [min,max], to a blue-white-red diverging
// color: blue for the low end, white at the midpoint, red at the high end.
// A degenerate range (min == max) always returns white.
func Heat(v, min, max float64) rl.Color {
	if max <= min {
		return rl.White
	}
	t := (v - min) / (max - min) // 0..1
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	if t < 0.5 {
		// blue -> white
		u := t / 0.5
		return lerpColor(rl.Blue, rl.White, u)
	}
	// white -> red
	u := (t - 0.5) / 0.5
	return lerpColor(rl.White, rl.Red, u)
}

func lerpColor(a, b rl.Color, t float64) rl.Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return rl.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

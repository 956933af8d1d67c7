// Package hud draws the run-status overlay for the slice viewer, adapted
// from the teacher's UIRenderer: the same fixed-position text-line layout,
// but reporting lattice run state instead of N-body particle/FPS counters,
// and actually issuing rl.DrawText calls instead of returning a stub error.
package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Status is the run state displayed each frame.
type Status struct {
	Step         int
	T            float64
	A            float64
	PhysicalTime float64
	SliceZ       int
	GridSize     int
	Playing      bool
}

// Overlay renders Status text at fixed screen positions.
type Overlay struct {
	screenWidth  int
	screenHeight int
	fontSize     int32
	title        string
}

// NewOverlay creates an Overlay sized to the given screen dimensions.
func NewOverlay(screenWidth, screenHeight int) *Overlay {
	return &Overlay{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "reheating lattice viewer",
	}
}

// SetTitle overrides the overlay's title line.
func (o *Overlay) SetTitle(title string) { o.title = title }

// Lines returns the status text lines in draw order, without drawing them.
// Exposed separately from Draw so tests can assert on content without a
// graphics context.
func (o *Overlay) Lines(s Status) []string {
	return []string{
		fmt.Sprintf("step: %d", s.Step),
		fmt.Sprintf("t: %.6f", s.T),
		fmt.Sprintf("a: %.6f", s.A),
		fmt.Sprintf("physical_time: %.6f", s.PhysicalTime),
		fmt.Sprintf("slice z: %d / %d", s.SliceZ, s.GridSize-1),
	}
}

// PlaybackText returns the play/pause indicator text.
func (o *Overlay) PlaybackText(s Status) string {
	if s.Playing {
		return "PLAYING (P to pause)"
	}
	return "PAUSED (P to play, arrows to step)"
}

// Draw renders the title, status lines, and playback indicator. Must be
// called between rl.BeginDrawing and rl.EndDrawing.
func (o *Overlay) Draw(s Status) {
	rl.DrawText(o.title, 10, 10, o.fontSize, rl.Lime)

	y := int32(40)
	for _, line := range o.Lines(s) {
		rl.DrawText(line, 10, y, o.fontSize, rl.White)
		y += o.fontSize + 4
	}

	playbackColor := rl.Yellow
	if s.Playing {
		playbackColor = rl.Green
	}
	rl.DrawText(o.PlaybackText(s), 10, int32(o.screenHeight)-30, o.fontSize, playbackColor)
}

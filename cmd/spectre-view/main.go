// Command spectre-view is an interactive 3D viewer for spectre snapshot
// directories: a fly camera, play/pause/step controls, and a single
// z-slice of the loaded field rendered as a colored grid, adapted from the
// teacher's raylib-driven input and render loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spectre/internal/viewer/camera"
	"spectre/internal/viewer/hud"
	"spectre/internal/viewer/playback"
	"spectre/internal/viewer/slice"
)

func main() {
	dir := flag.String("dir", "snapshots", "snapshot directory produced by the spectre command")
	field := flag.String("field", "phi", "field name to view")
	n := flag.Int("n", 32, "lattice points per side (must match the run that produced the snapshots)")
	rate := flag.Float64("rate", 4, "snapshots per second during playback")
	width := flag.Int("width", 1024, "window width")
	height := flag.Int("height", 768, "window height")
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, fmt.Sprintf("%s_*.bin", *field)))
	if err != nil || len(paths) == 0 {
		log.Fatalf("no snapshots found for field %q in %q: %v", *field, *dir, err)
	}
	sort.Strings(paths)

	rl.InitWindow(int32(*width), int32(*height), "spectre slice viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, float32(*n)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	controller := camera.NewController()
	player := playback.NewPlayer(*rate, len(paths)-1)
	overlay := hud.NewOverlay(*width, *height)

	sliceZ := *n / 2
	cubeSize := float32(1.0)
	state := &camera.ViewerState{}

	for !rl.WindowShouldClose() {
		controller.UpdateFromRaylib()
		dt := float64(rl.GetFrameTime())

		controller.Process(&cam, state, camera.Config{
			MoveSpeed:        5 * float32(dt),
			MouseSensitivity: 0.005,
			ScreenWidth:      *width,
			ScreenHeight:     *height,
		})
		player.Update(dt, state.Playing, state.StepNext, state.StepPrev)

		if rl.IsKeyPressed(rl.KeyUp) {
			sliceZ = clampInt(sliceZ+1, 0, *n-1)
		}
		if rl.IsKeyPressed(rl.KeyDown) {
			sliceZ = clampInt(sliceZ-1, 0, *n-1)
		}

		grid, err := slice.Load(paths[player.Index()], *n)
		if err != nil {
			log.Fatalf("loading snapshot %q: %v", paths[player.Index()], err)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(cam)
		slice.DrawZSlice(grid, sliceZ, cubeSize)
		rl.EndMode3D()

		overlay.Draw(hud.Status{
			Step:     player.Index(),
			SliceZ:   sliceZ,
			GridSize: *n,
			Playing:  state.Playing,
		})
		rl.EndDrawing()
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

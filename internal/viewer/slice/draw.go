package slice

import rl "github.com/gen2brain/raylib-go/raylib"

// DrawZSlice draws one z-plane of grid as an N*N grid of cubes centered on
// the origin, each cubeSize wide and colored by Heat against the grid's
// value range.
func DrawZSlice(grid *Grid, z int, cubeSize float32) {
	min, max := grid.Bounds()
	values := grid.ZSlice(z)

	half := float32(grid.N) * cubeSize / 2
	for x := 0; x < grid.N; x++ {
		for y := 0; y < grid.N; y++ {
			v := values[y+grid.N*x]
			color := Heat(v, min, max)
			pos := rl.Vector3{
				X: float32(x)*cubeSize - half,
				Y: float32(y)*cubeSize - half,
				Z: 0,
			}
			rl.DrawCube(pos, cubeSize*0.9, cubeSize*0.9, cubeSize*0.9, color)
		}
	}
}

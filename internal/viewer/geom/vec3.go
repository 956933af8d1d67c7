// Package geom provides the small vector type the slice viewer needs to
// place grid cells in raylib's 3D space, adapted from the teacher's
// internal/physics/vec3.go.
package geom

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vec3 is a float64 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// ToRaylib converts a Vec3 to raylib's Vector3.
func (v Vec3) ToRaylib() rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

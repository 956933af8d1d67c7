//go:build !spectre_twofield

package config

// TwoField selects, at compile time, whether this build carries the second
// scalar field chi alongside phi. The default build is single-field.
const TwoField = false

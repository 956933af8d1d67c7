//go:build spectre_twofield

package config

// TwoField selects, at compile time, whether this build carries the second
// scalar field chi alongside phi. spec.md treats the field count as the one
// structural choice that stays a build-time toggle rather than a runtime
// coefficient check (every coupling constant is still checked at runtime).
const TwoField = true

// Package snapshot implements the snapshot sink of spec.md §4.7/§6: writing
// a field's position-space values to the mandated binary layout, plus the
// human-readable run-level status log spec_full.md §8.2 adds alongside it.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"spectre/internal/cosmology"
	"spectre/internal/spectral"
	"spectre/internal/spectreerr"
)

// Sink writes snapshot files into a fixed output directory. WriteField does
// not touch the log; each LogStatus call appends one status line to the
// shared run.log file in the same directory.
type Sink struct {
	dir     string
	logPath string
}

// NewSink creates a Sink rooted at dir, creating the directory if it does
// not exist. The directory must be writable by the driver process.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, spectreerr.Wrap(spectreerr.IOFailure, "creating snapshot directory", err)
	}
	return &Sink{dir: dir, logPath: filepath.Join(dir, "run.log")}, nil
}

// WriteField writes one field's position-space values to
// <field>_<5-digit index>.bin: little-endian raw contiguous doubles of
// length N^3, in spec.md §6's row-major order, with no header. f must be in
// position state.
func (s *Sink) WriteField(name string, index int, f *spectral.Field) error {
	if f.State() != spectral.Position {
		return spectreerr.New(spectreerr.Precondition, "snapshot write requires field in position state")
	}

	filename := filepath.Join(s.dir, fmt.Sprintf("%s_%05d.bin", name, index))
	file, err := os.Create(filename)
	if err != nil {
		return spectreerr.Wrap(spectreerr.IOFailure, "creating snapshot file", err)
	}
	defer file.Close()

	data := f.PositionData()
	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	if _, err := file.Write(buf); err != nil {
		return spectreerr.Wrap(spectreerr.IOFailure, "writing snapshot file", err)
	}
	return nil
}

// LogStatus appends one human-readable metadata line to the run-level log:
// step index, t, a, physical_time, and grid size N. This supplements, but
// never replaces, the headerless binary format spec.md §6 mandates.
func (s *Sink) LogStatus(step int, ts *cosmology.TimeState, n int) error {
	file, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return spectreerr.Wrap(spectreerr.IOFailure, "opening status log", err)
	}
	defer file.Close()

	line := fmt.Sprintf("step=%d t=%.6f a=%.6f physical_time=%.6f N=%d\n", step, ts.T, ts.A, ts.PhysicalTime, n)
	if _, err := file.WriteString(line); err != nil {
		return spectreerr.Wrap(spectreerr.IOFailure, "writing status log", err)
	}
	return nil
}

// Package xyz implements the concatenated geometry-block trajectory format.
//
// A geometry block is an atom count line, a free-text comment line, then one
// coordinate line per atom. Trajectory files hold one or more blocks back to
// back. Coordinate lines are opaque to this package and pass through
// verbatim.
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"xyzdb/storage"
)

// ErrMalformed indicates geometry input that cannot be decoded: empty input,
// or an atom count line that does not parse as an integer.
var ErrMalformed = errors.New("malformed geometry input")

// energyMarker is scanned for, case-sensitively, in block comment lines.
const energyMarker = "energy="

// Block is one decoded geometry block.
type Block struct {
	// Energy is the value of the comment line's energy marker, or the
	// decoder's default when the marker is absent or unparseable.
	Energy float64
	// Text is the verbatim block: atom count line, comment line and
	// coordinate lines, newlines included.
	Text string
}

// Decode reads concatenated geometry blocks from r and returns them in
// encounter order. defaultEnergy applies to blocks whose comment line carries
// no parseable energy marker. A block shorter than its declared atom count is
// truncated at end of input rather than rejected; the coordinate lines are
// never inspected. Block text is normalized to one trailing newline per line,
// so input whose final line lacks a newline gains one.
func Decode(r io.Reader, defaultEnergy float64) ([]Block, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read geometry input: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty geometry input: %w", ErrMalformed)
	}

	var blocks []Block
	for i := 0; i < len(lines); {
		atomCount, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad atom count %q: %w", i+1, lines[i], ErrMalformed)
		}
		if atomCount < 0 {
			return nil, fmt.Errorf("line %d: bad atom count %d: %w", i+1, atomCount, ErrMalformed)
		}

		// Compare before adding: i + atomCount + 2 can overflow for a
		// parseable-but-huge count.
		end := len(lines)
		if atomCount <= len(lines)-i-2 {
			end = i + atomCount + 2
		}

		energy := defaultEnergy
		if i+1 < len(lines) {
			energy = EnergyFromComment(lines[i+1], defaultEnergy)
		}

		var b strings.Builder
		for _, line := range lines[i:end] {
			b.WriteString(line)
			b.WriteString("\n")
		}
		blocks = append(blocks, Block{Energy: energy, Text: b.String()})

		i = end
	}
	return blocks, nil
}

// EnergyFromComment extracts the energy marker value from a block comment
// line. The match is case-sensitive; everything after the last marker is
// parsed as a float, and anything unparseable falls back to def.
func EnergyFromComment(comment string, def float64) float64 {
	idx := strings.LastIndex(comment, energyMarker)
	if idx < 0 {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(comment[idx+len(energyMarker):]), 64)
	if err != nil {
		return def
	}
	return v
}

// EncodeTrajectory concatenates stored geometry payloads verbatim, in stored
// order, with no per-block modification.
func EncodeTrajectory(conformers []storage.Conformer) string {
	var b strings.Builder
	for _, c := range conformers {
		b.WriteString(c.XYZ)
	}
	return b.String()
}

// EncodeRetitled re-emits a stored block with its comment line replaced by a
// "Molecule: <name>" line. The atom count line and everything from the third
// line onward pass through unchanged.
func EncodeRetitled(name, block string) string {
	lines := strings.Split(block, "\n")
	var b strings.Builder
	b.WriteString(lines[0])
	b.WriteString("\n")
	b.WriteString("Molecule: ")
	b.WriteString(name)
	b.WriteString("\n")
	if len(lines) > 2 {
		b.WriteString(strings.Join(lines[2:], "\n"))
	}
	return b.String()
}

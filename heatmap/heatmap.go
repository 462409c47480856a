// Package heatmap derives per-cell ship probabilities from the shot grid and
// the remaining ship lengths. Two densities are computed: an unconstrained
// placement density over every free streak of the board, and a density
// conditioned on the existing hit markers. The two are combined as
// independent events, and every already-resolved cell is masked to zero.
package heatmap

import (
	"github.com/wojtekolesinski/admiral/field"
	"github.com/wojtekolesinski/admiral/models"
)

// Warning reports a board/roster combination no ship placement can satisfy.
// The engine degrades the affected contribution to zero and keeps going; the
// caller decides whether to log, display or ignore it. Aborting down here
// would throw away exactly the context the player needs to fix the mistake.
type Warning struct {
	ShipLength int // 0 when the warning is not tied to a single length
	Message    string
}

func (w Warning) String() string { return w.Message }

// Generate computes the heat field for the given shots and remaining ship
// lengths, together with any consistency warnings encountered on the way.
func Generate(shots *field.Field[models.ShotStatus], shipLengths []int) (*field.Field[float64], []Warning) {
	free := field.Transform(shots, models.ShotStatus.CanContainShip)
	hits := shots.FindAll(func(s models.ShotStatus) bool { return s == models.ShotHit })

	base, warnings := genBaseHeat(free, shipLengths)
	hitHeat, hitWarnings := genHitHeat(free, hits, shipLengths)
	warnings = append(warnings, hitWarnings...)

	combined := reduceHeatFields(shots.Width(), shots.Height(), []*field.Field[float64]{base, hitHeat})
	return maskHeatField(combined, shots), warnings
}

// reduceHeatFields folds probability fields into one by treating them as
// independent events: P = 1 - Π(1-Pᵢ). No input fields yield an all-zero
// result.
func reduceHeatFields(width, height int, fields []*field.Field[float64]) *field.Field[float64] {
	acc := field.New(width, height, 1.0)
	for _, f := range fields {
		acc = field.Merge(acc, f, func(a, p float64) float64 { return a * (1 - p) })
	}
	return field.Transform(acc, func(v float64) float64 { return 1 - v })
}

// maskHeatField forces every cell with a known outcome to exactly zero; no
// further information is needed there.
func maskHeatField(heat *field.Field[float64], shots *field.Field[models.ShotStatus]) *field.Field[float64] {
	return field.Merge(heat, shots, func(h float64, s models.ShotStatus) float64 {
		if s == models.ShotUntested {
			return h
		}
		return 0
	})
}

type streak struct {
	length int
	free   bool
}

// streaks reduces a line into its maximal runs of equal values.
func streaks(line []bool) []streak {
	if len(line) == 0 {
		return nil
	}
	out := []streak{{length: 1, free: line[0]}}
	for _, v := range line[1:] {
		if last := &out[len(out)-1]; last.free == v {
			last.length++
		} else {
			out = append(out, streak{length: 1, free: v})
		}
	}
	return out
}

// genLine counts, per cell, how many placements of shipLength cover it, and
// returns the total number of placements on the line alongside.
func genLine(line []bool, shipLength int) ([]int, int) {
	counts := make([]int, 0, len(line))
	total := 0
	for _, s := range streaks(line) {
		if !s.free {
			counts = append(counts, make([]int, s.length)...)
			continue
		}
		section, n := genFreeSpace(s.length, shipLength)
		counts = append(counts, section...)
		total += n
	}
	return counts, total
}

// genFreeSpace counts placements of shipLength inside a free streak of the
// given size. There are space-shipLength+1 window positions; cell i is
// covered by min(i+1, space-i, shipLength, placements) of them, capped by
// both streak ends and by the placement count itself.
func genFreeSpace(space, shipLength int) ([]int, int) {
	if shipLength > space {
		return make([]int, space), 0
	}
	placements := space - shipLength + 1
	counts := make([]int, space)
	for i := range counts {
		counts[i] = min(i+1, space-i, shipLength, placements)
	}
	return counts, placements
}

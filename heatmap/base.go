package heatmap

import (
	"fmt"

	"github.com/wojtekolesinski/admiral/field"
	"github.com/wojtekolesinski/admiral/models"
)

// genBaseHeat computes the unconstrained placement density: for each
// remaining ship length, how many legal straight placements cover every cell,
// normalized by that length's board-wide placement total.
//
// A length that fits nowhere means the input is inconsistent. That is either
// a typo the player can still fix, or — under an automated caller — a deeper
// problem this layer cannot tell apart. Either way the contribution degrades
// to zero and a warning is returned instead of aborting.
func genBaseHeat(free *field.Field[bool], shipLengths []int) (*field.Field[float64], []Warning) {
	var warnings []Warning
	fields := make([]*field.Field[float64], 0, len(shipLengths))
	for _, length := range shipLengths {
		counts, total := genShipCounts(free, length)
		if total == 0 {
			warnings = append(warnings, Warning{
				ShipLength: length,
				Message:    fmt.Sprintf("ship of length %d cannot be placed anywhere", length),
			})
			fields = append(fields, field.NewDefault[float64](free.Width(), free.Height()))
			continue
		}
		fields = append(fields, countsToHeat(counts, total))
	}
	return reduceHeatFields(free.Width(), free.Height(), fields), warnings
}

func countsToHeat(counts *field.Field[int], total int) *field.Field[float64] {
	return field.Transform(counts, func(c int) float64 { return float64(c) / float64(total) })
}

// genShipCounts sums per-cell placement counts for one ship length over every
// row and every column, returning the board-wide placement total alongside.
func genShipCounts(free *field.Field[bool], shipLength int) (*field.Field[int], int) {
	counts := field.NewDefault[int](free.Width(), free.Height())
	total := 0
	add := func(a, b int) int { return a + b }
	for _, axis := range []models.Axis{models.AxisRow, models.AxisColumn} {
		for index := 0; index < free.LineCount(axis); index++ {
			line, _ := free.Line(axis, index)
			section, n := genLine(line, shipLength)
			_ = counts.MergeLine(axis, index, section, add)
			total += n
		}
	}
	return counts, total
}

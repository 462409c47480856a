package heatmap

import (
	"github.com/wojtekolesinski/admiral/field"
	"github.com/wojtekolesinski/admiral/models"
)

// genHitHeat computes the density conditioned on existing hits. Every hit
// must be covered by some remaining ship, so placements are counted on the
// hit's row and column only, with every cell a covering ship could not reach
// masked off. Without hits there is no information and the result is all
// zero.
func genHitHeat(free *field.Field[bool], hits []models.Coordinate, shipLengths []int) (*field.Field[float64], []Warning) {
	width, height := free.Width(), free.Height()
	if len(hits) == 0 {
		return field.NewDefault[float64](width, height), nil
	}

	covered := 0
	fields := make([]*field.Field[float64], 0, len(shipLengths))
	for _, length := range shipLengths {
		heat, placements := genShipHitHeat(free, hits, length)
		covered += placements
		fields = append(fields, heat)
	}

	var warnings []Warning
	if covered == 0 {
		warnings = append(warnings, Warning{Message: "no remaining ship length can cover the existing hits"})
	}
	return reduceHeatFields(width, height, fields), warnings
}

// genShipHitHeat accumulates, for one ship length, the placement density
// around every hit, normalized per hit. The returned count is the number of
// legal placements of this length covering any hit; zero placements for a
// single hit just contribute nothing.
func genShipHitHeat(free *field.Field[bool], hits []models.Coordinate, shipLength int) (*field.Field[float64], int) {
	heat := field.NewDefault[float64](free.Width(), free.Height())
	placements := 0
	add := func(a, b float64) float64 { return a + b }
	for _, hit := range hits {
		row, column, err := free.LinesThrough(hit)
		if err != nil {
			continue
		}

		rowCounts, rowTotal := genLine(maskAroundHit(row, hit.Column, shipLength), shipLength)
		columnCounts, columnTotal := genLine(maskAroundHit(column, hit.Row, shipLength), shipLength)

		total := rowTotal + columnTotal
		if total == 0 {
			continue
		}
		placements += total

		_ = heat.MergeLine(models.AxisRow, hit.Row, lineToHeat(rowCounts, total), add)
		_ = heat.MergeLine(models.AxisColumn, hit.Column, lineToHeat(columnCounts, total), add)
	}
	return field.Transform(heat, func(v float64) float64 { return v / float64(len(hits)) }), placements
}

func lineToHeat(counts []int, total int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c) / float64(total)
	}
	return out
}

// maskAroundHit forces to false every cell that a ship of shipLength covering
// the hit could not reach: anything further than shipLength-1 away.
func maskAroundHit(line []bool, hit, shipLength int) []bool {
	out := make([]bool, len(line))
	for i, v := range line {
		if i+shipLength <= hit || hit+shipLength <= i {
			continue
		}
		out[i] = v
	}
	return out
}

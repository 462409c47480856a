package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojtekolesinski/admiral/field"
	"github.com/wojtekolesinski/admiral/models"
)

// standardShots builds a 9×7 board with the given cells overridden.
func standardShots(t *testing.T, cells map[models.Coordinate]models.ShotStatus) *field.Field[models.ShotStatus] {
	t.Helper()
	shots := field.NewDefault[models.ShotStatus](9, 7)
	for coord, status := range cells {
		require.NoError(t, shots.SetValue(coord, status))
	}
	return shots
}

var standardShips = []int{2, 3, 3, 4, 5}

func TestGenFreeSpace(t *testing.T) {
	counts, placements := genFreeSpace(5, 3)
	assert.Equal(t, 3, placements)
	assert.Equal(t, []int{1, 2, 3, 2, 1}, counts)

	counts, placements = genFreeSpace(5, 5)
	assert.Equal(t, 1, placements)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, counts)

	counts, placements = genFreeSpace(3, 5)
	assert.Equal(t, 0, placements)
	assert.Equal(t, []int{0, 0, 0}, counts)

	counts, placements = genFreeSpace(4, 1)
	assert.Equal(t, 4, placements)
	assert.Equal(t, []int{1, 1, 1, 1}, counts)
}

func TestStreaks(t *testing.T) {
	assert.Equal(t,
		[]streak{{2, true}, {1, false}, {3, true}},
		streaks([]bool{true, true, false, true, true, true}))
	assert.Equal(t, []streak{{4, false}}, streaks([]bool{false, false, false, false}))
	assert.Nil(t, streaks(nil))
}

func TestGenLineSplitsOnBlockedCells(t *testing.T) {
	line := []bool{true, true, false, true, true, true}
	counts, total := genLine(line, 2)
	assert.Equal(t, []int{1, 1, 0, 1, 2, 1}, counts)
	assert.Equal(t, 3, total)

	counts, total = genLine([]bool{false, false}, 2)
	assert.Equal(t, []int{0, 0}, counts)
	assert.Equal(t, 0, total)
}

func TestGenerateFreshBoard(t *testing.T) {
	shots := standardShots(t, nil)
	heat, warnings := Generate(shots, standardShips)

	assert.Empty(t, warnings)
	for _, coord := range shots.FindAll(func(models.ShotStatus) bool { return true }) {
		v, err := heat.Value(coord)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0, coord.String())
		assert.LessOrEqual(t, v, 1.0, coord.String())
	}

	// fewer placements reach a corner than the middle of the board
	corner, _ := heat.Value(models.Coordinate{Row: 0, Column: 0})
	center, _ := heat.Value(models.Coordinate{Row: 3, Column: 4})
	assert.Less(t, corner, center)
}

func TestGenerateMasksResolvedCells(t *testing.T) {
	miss := models.Coordinate{Row: 2, Column: 2}
	hit := models.Coordinate{Row: 4, Column: 4}
	sunk := models.Coordinate{Row: 6, Column: 8}
	shots := standardShots(t, map[models.Coordinate]models.ShotStatus{
		miss: models.ShotMiss,
		hit:  models.ShotHit,
		sunk: models.ShotSunk,
	})

	heat, _ := Generate(shots, standardShips)
	for _, coord := range []models.Coordinate{miss, hit, sunk} {
		v, err := heat.Value(coord)
		require.NoError(t, err)
		assert.Zero(t, v, coord.String())
	}
}

func TestGenerateHitRaisesNeighbours(t *testing.T) {
	hit := models.Coordinate{Row: 3, Column: 4}
	shots := standardShots(t, map[models.Coordinate]models.ShotStatus{hit: models.ShotHit})

	heat, warnings := Generate(shots, standardShips)
	assert.Empty(t, warnings)

	neighbour, _ := heat.Value(models.Coordinate{Row: 3, Column: 5})
	corner, _ := heat.Value(models.Coordinate{Row: 0, Column: 0})
	assert.Greater(t, neighbour, corner)

	for _, coord := range shots.FindAll(func(models.ShotStatus) bool { return true }) {
		v, _ := heat.Value(coord)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestGenerateWarnsOnUnplaceableShip(t *testing.T) {
	shots := field.NewDefault[models.ShotStatus](3, 3)
	heat, warnings := Generate(shots, []int{5})

	require.Len(t, warnings, 1)
	assert.Equal(t, 5, warnings[0].ShipLength)

	// degraded to an all-zero contribution instead of aborting
	for _, coord := range shots.FindAll(func(models.ShotStatus) bool { return true }) {
		v, _ := heat.Value(coord)
		assert.Zero(t, v)
	}
}

func TestGenerateWarnsOnUnexplainableHits(t *testing.T) {
	shots := field.NewDefault[models.ShotStatus](3, 1)
	require.NoError(t, shots.SetValue(models.Coordinate{Row: 0, Column: 0}, models.ShotHit))
	require.NoError(t, shots.SetValue(models.Coordinate{Row: 0, Column: 1}, models.ShotMiss))

	_, warnings := Generate(shots, []int{3})

	// the roster cannot be placed at all, and in particular cannot cover the hit
	require.Len(t, warnings, 2)
	assert.Equal(t, 3, warnings[0].ShipLength)
	assert.Zero(t, warnings[1].ShipLength)
}

func TestGenerateEmptyRoster(t *testing.T) {
	shots := standardShots(t, nil)
	heat, warnings := Generate(shots, nil)

	assert.Empty(t, warnings)
	for _, coord := range shots.FindAll(func(models.ShotStatus) bool { return true }) {
		v, _ := heat.Value(coord)
		assert.Zero(t, v)
	}
}

func TestMaskAroundHit(t *testing.T) {
	line := []bool{true, true, true, true, true, true}
	masked := maskAroundHit(line, 3, 2)
	assert.Equal(t, []bool{false, false, true, true, true, false}, masked)

	// blocked cells stay blocked inside the window
	line = []bool{true, false, true, true, true, true}
	masked = maskAroundHit(line, 2, 3)
	assert.Equal(t, []bool{true, false, true, true, true, false}, masked)
}

// Package game owns the advisor's mutable state: the shot grid, the
// remaining ship roster, the action history, and the heat field and top-move
// set derived from them.
package game

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/wojtekolesinski/admiral/field"
	"github.com/wojtekolesinski/admiral/heatmap"
	"github.com/wojtekolesinski/admiral/models"
)

var (
	ErrEmptyHistory   = errors.New("no more actions to undo")
	ErrShipNotFound   = errors.New("ship not found")
	ErrShipDoesNotFit = errors.New("ship doesn't fit existing hits")
	ErrGameOver       = errors.New("game is over")
)

// heatEpsilon bounds the difference under which two heat values count as tied.
const heatEpsilon = 1e-9

// LocationPicker chooses between candidate ship locations when a sink is
// ambiguous. It is only called with two or more candidates and must return a
// valid index into them.
type LocationPicker func(locations [][]models.Coordinate) int

// State executes actions against the grid and roster, keeps a linear history
// for undo, and recomputes the heat field and top-move set after every
// mutation. It is not safe for concurrent use; callers introducing
// concurrency must serialize all access.
type State struct {
	shots    *field.Field[models.ShotStatus]
	ships    []int
	heat     *field.Field[float64]
	topMoves []models.Coordinate
	warnings []heatmap.Warning
	history  []models.Action
	pick     LocationPicker
}

// New creates a fresh board of the given size with the given ship roster.
// pick resolves ambiguous sinks.
func New(width, height int, ships []int, pick LocationPicker) *State {
	s := &State{
		shots: field.NewDefault[models.ShotStatus](width, height),
		ships: append([]int(nil), ships...),
		pick:  pick,
	}
	s.update()
	return s
}

func (s *State) update() {
	s.heat, s.warnings = heatmap.Generate(s.shots, s.ships)
	s.topMoves = topMoves(s.heat, s.shots)
}

func (s *State) Shots() *field.Field[models.ShotStatus] { return s.shots }
func (s *State) Heat() *field.Field[float64]            { return s.heat }
func (s *State) Ships() []int                           { return append([]int(nil), s.ships...) }
func (s *State) Warnings() []heatmap.Warning            { return s.warnings }
func (s *State) GameOver() bool                         { return len(s.ships) == 0 }

// TopMoves returns the Untested coordinates tying the maximum heat value,
// primary recommendation first.
func (s *State) TopMoves() []models.Coordinate {
	return append([]models.Coordinate(nil), s.topMoves...)
}

// History returns a copy of the executed-action history, oldest first.
func (s *State) History() []models.Action {
	return append([]models.Action(nil), s.history...)
}

// TakeAction executes a fully-resolved action. An undo converts itself into
// the opposite of the most recent history entry and leaves no trace of its
// own. Sinking the last ship commits fully and then reports ErrGameOver.
// Passing an action whose argument was never resolved is a bug in the caller.
func (s *State) TakeAction(action models.Action) error {
	wasUndo := false
	if action.Kind == models.KindUndo {
		last, err := s.LastAction()
		if err != nil {
			return err
		}
		action = last.Opposite()
		s.history = s.history[:len(s.history)-1]
		wasUndo = true
	}

	if !action.Resolved {
		panic(fmt.Sprintf("game: cannot execute %q with an unresolved argument", action.Name()))
	}

	var err error
	switch action.Kind {
	case models.KindFire:
		err = s.shots.SetValue(action.Coord, models.ShotMiss)
	case models.KindUnfire:
		err = s.shots.SetValue(action.Coord, models.ShotUntested)
	case models.KindHit:
		err = s.shots.SetValue(action.Coord, models.ShotHit)
	case models.KindSink:
		action, err = s.sinkShip(action)
	case models.KindUnsink:
		s.unsinkShip(action)
	}
	if err != nil {
		return err
	}

	if !wasUndo {
		s.record(action)
	}
	s.update()

	if s.GameOver() {
		return ErrGameOver
	}
	return nil
}

// record appends the executed action to history, except that an action
// immediately reverting the previous entry collapses the pair instead: the
// history tracks the net state, so fire followed by unfire at the same cell
// leaves no trace.
func (s *State) record(action models.Action) {
	if n := len(s.history); n > 0 && reverts(s.history[n-1], action) {
		s.history = s.history[:n-1]
		return
	}
	s.history = append(s.history, action)
}

// reverts reports whether executing action right after prev is exactly
// equivalent to undoing prev. For a sink/unsink pair that requires the unsink
// to restore the same cells the sink marked; an explicitly typed unsink knows
// no cells and does not collapse.
func reverts(prev, action models.Action) bool {
	opposite := prev.Opposite()
	if opposite.Kind != action.Kind {
		return false
	}
	switch action.Kind {
	case models.KindFire, models.KindUnfire, models.KindHit:
		return opposite.Coord == action.Coord
	default:
		return opposite.Length == action.Length &&
			slices.Equal(opposite.SunkCells, action.SunkCells)
	}
}

// sinkShip removes one ship of the action's length, resolves where it lay and
// marks those cells Sunk. All checks happen before any mutation, so a failed
// sink leaves the state untouched. The returned action records the marked
// cells so its opposite can restore them.
func (s *State) sinkShip(action models.Action) (models.Action, error) {
	position := -1
	for i, ship := range s.ships {
		if ship == action.Length {
			position = i
			break
		}
	}
	if position == -1 {
		return action, ErrShipNotFound
	}

	locations := s.possibleShipLocations(action.Length)
	if len(locations) == 0 {
		return action, ErrShipDoesNotFit
	}

	chosen := locations[0]
	if len(locations) > 1 {
		chosen = locations[s.pick(locations)]
	}

	s.ships = append(s.ships[:position], s.ships[position+1:]...)
	for _, coord := range chosen {
		_ = s.shots.SetValue(coord, models.ShotSunk)
	}
	action.SunkCells = chosen
	return action, nil
}

// unsinkShip returns the length to the roster. When the action knows which
// cells its sink marked (it came from undo, or was inferred from the history
// entry), those cells become hits again. An explicitly typed unsink has no
// way to know and leaves the grid alone.
func (s *State) unsinkShip(action models.Action) {
	s.ships = append(s.ships, action.Length)
	for _, coord := range action.SunkCells {
		_ = s.shots.SetValue(coord, models.ShotHit)
	}
}

// possibleShipLocations lists every straight run of exactly shipLength cells
// fully marked Hit, along both axes.
func (s *State) possibleShipLocations(shipLength int) [][]models.Coordinate {
	if shipLength < 1 {
		return nil
	}
	var locations [][]models.Coordinate
	for _, axis := range []models.Axis{models.AxisRow, models.AxisColumn} {
		for index := 0; index < s.shots.LineCount(axis); index++ {
			line, _ := s.shots.Line(axis, index)
			for start := 0; start+shipLength <= len(line); start++ {
				if !allHit(line[start : start+shipLength]) {
					continue
				}
				location := make([]models.Coordinate, shipLength)
				for offset := range location {
					coord := models.Coordinate{}.WithAxisIndex(axis, index)
					location[offset] = coord.WithAxisIndex(axis.Opposite(), start+offset)
				}
				locations = append(locations, location)
			}
		}
	}
	return locations
}

func allHit(cells []models.ShotStatus) bool {
	for _, c := range cells {
		if c != models.ShotHit {
			return false
		}
	}
	return true
}

// LastAction returns the most recent history entry without removing it.
func (s *State) LastAction() (models.Action, error) {
	if len(s.history) == 0 {
		return models.Action{}, ErrEmptyHistory
	}
	return s.history[len(s.history)-1], nil
}

// LastMatchingAction scans the history newest-first for an entry of the same
// kind as template, ignoring its argument. The history never contains undo,
// so asking for one is a bug in the caller.
func (s *State) LastMatchingAction(template models.Action) (models.Action, error) {
	if template.Kind == models.KindUndo {
		panic("game: undo never appears in the action history")
	}
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Kind == template.Kind {
			return s.history[i], nil
		}
	}
	return models.Action{}, fmt.Errorf("could not find the last %q in history", template.Name())
}

// topMoves collects the Untested cells whose heat ties the maximum, primary
// first in row-major scan order.
func topMoves(heat *field.Field[float64], shots *field.Field[models.ShotStatus]) []models.Coordinate {
	max := math.Inf(-1)
	var moves []models.Coordinate
	for _, coord := range shots.FindAll(func(s models.ShotStatus) bool { return s == models.ShotUntested }) {
		value, err := heat.Value(coord)
		if err != nil {
			continue
		}
		switch {
		case value > max:
			max = value
			moves = append(moves[:0], coord)
		case max-value <= heatEpsilon:
			moves = append(moves, coord)
		}
	}
	return moves
}

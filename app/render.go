package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-wordwrap"
	"github.com/wojtekolesinski/admiral/models"
)

const helpWidth = 100

var (
	primaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	alternateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// render prints the board, the remaining roster and the current
// recommendations, and logs any consistency warnings the last recompute
// produced.
func (a *App) render() {
	fmt.Fprintln(a.out, "Board state:")
	fmt.Fprint(a.out, a.renderBoard())
	a.renderShips()
	a.renderRecommendations()

	for _, w := range a.state.Warnings() {
		log.Warn("app [render]", "warning", w.Message, "shipLength", w.ShipLength)
	}
}

// renderBoard formats one cell per board position: status glyphs for
// resolved cells, the heat value otherwise, with the primary recommendation
// in red and the alternates in green.
func (a *App) renderBoard() string {
	shots := a.state.Shots()
	heat := a.state.Heat()
	moves := a.state.TopMoves()

	var b strings.Builder
	for row := 0; row < shots.Height(); row++ {
		for column := 0; column < shots.Width(); column++ {
			coord := models.Coordinate{Row: row, Column: column}
			status, _ := shots.Value(coord)
			switch status {
			case models.ShotHit:
				b.WriteString("[####]")
			case models.ShotMiss:
				b.WriteString("[----]")
			case models.ShotSunk:
				b.WriteString("[||||]")
			default:
				value, _ := heat.Value(coord)
				cell := fmt.Sprintf("[%.2f]", value)
				switch recommendationRank(moves, coord) {
				case 0:
					cell = primaryStyle.Render(cell)
				case 1:
					cell = alternateStyle.Render(cell)
				}
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// recommendationRank reports whether coord is the primary recommendation (0),
// an alternate (1) or not recommended (-1).
func recommendationRank(moves []models.Coordinate, coord models.Coordinate) int {
	for i, m := range moves {
		if m == coord {
			if i == 0 {
				return 0
			}
			return 1
		}
	}
	return -1
}

func (a *App) renderShips() {
	ships := a.state.Ships()
	if len(ships) == 0 {
		fmt.Fprintln(a.out, "No ships left.")
		return
	}
	parts := make([]string, len(ships))
	for i, s := range ships {
		parts[i] = strconv.Itoa(s)
	}
	fmt.Fprintf(a.out, "Remaining ships: %s\n", strings.Join(parts, ", "))
}

func (a *App) renderRecommendations() {
	moves := a.state.TopMoves()
	if len(moves) == 0 {
		fmt.Fprintln(a.out, "No moves to recommend.")
		return
	}
	fmt.Fprintf(a.out, "Recommended move: %s\n", moves[0])
	if len(moves) > 1 {
		var b strings.Builder
		b.WriteString("Alternate moves:")
		for _, coord := range moves[1:] {
			b.WriteString(coord.String())
		}
		fmt.Fprintln(a.out, b.String())
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Available commands:")
	for _, kind := range models.Kinds() {
		fmt.Fprintln(a.out, wordwrap.WrapString(models.Bare(kind).SyntaxHelp(), helpWidth))
	}
}

// Package app drives the interactive advisor: it reads commands, resolves
// them into fully-specified actions, executes them against the game state and
// redraws the board with its recommendations.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wojtekolesinski/admiral/game"
	"github.com/wojtekolesinski/admiral/models"
)

type App struct {
	state *game.State
	in    *bufio.Scanner
	out   io.Writer
}

func New(width, height int, ships []int) *App {
	a := &App{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
	a.state = game.New(width, height, ships, a.pickShipLocation)
	return a
}

// Run loops until the input closes: print the board and recommendations,
// read a command, execute it, report the outcome.
func (a *App) Run() {
	a.printHelp()
	a.render()

	for {
		fmt.Fprintln(a.out, "Please enter a command.")
		line, ok := a.readLine()
		if !ok {
			return
		}

		report, err := a.playRound(line)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		fmt.Fprintln(a.out, report)
		a.render()
	}
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// playRound turns one input line into an executed action and returns the
// message to show the player. Undo reports both what it undid and the effect
// of the inverse it executed.
func (a *App) playRound(input string) (string, error) {
	action, err := a.processInput(input)
	if err != nil {
		return "", err
	}

	var report string
	if action.Kind == models.KindUndo {
		last, err := a.state.LastAction()
		if err != nil {
			return "", err
		}
		report = fmt.Sprintf("Successfully undid '%s'.\n%s", last.Name(), last.Opposite().SuccessMessage())
	} else {
		report = action.SuccessMessage()
	}

	if err := a.state.TakeAction(action); err != nil {
		if errors.Is(err, game.ErrGameOver) {
			return report + "\nGame is over, go home :)", nil
		}
		return "", err
	}

	return report, nil
}

// processInput parses a line and fills in any omitted argument from context:
// a bare fire targets the current recommendation, a bare hit marks the last
// fire, and the un- actions invert their most recent counterpart.
func (a *App) processInput(input string) (models.Action, error) {
	action, err := parseInput(input)
	if err != nil {
		return models.Action{}, err
	}
	if action.Resolved {
		return action, nil
	}

	switch action.Kind {
	case models.KindFire:
		moves := a.state.TopMoves()
		if len(moves) == 0 {
			return models.Action{}, fmt.Errorf("no move left to recommend")
		}
		return models.Fire(moves[0]), nil
	case models.KindHit:
		last, err := a.state.LastMatchingAction(models.Bare(models.KindFire))
		if err != nil {
			return models.Action{}, err
		}
		return models.Hit(last.Coord), nil
	case models.KindUnfire, models.KindUnsink:
		last, err := a.state.LastMatchingAction(action.Opposite())
		if err != nil {
			return models.Action{}, err
		}
		return last.Opposite(), nil
	}
	return models.Action{}, fmt.Errorf("cannot infer arguments for %q", action.Name())
}

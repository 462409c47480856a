package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wojtekolesinski/admiral/models"
)

// parseInput turns a raw input line into an action. Commands are
// case-insensitive; coordinates arrive 1-indexed, column first. An omitted
// argument is left unresolved for inference, unless the action cannot infer
// one at all.
func parseInput(input string) (models.Action, error) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return models.Action{}, fmt.Errorf("unable to parse command")
	}

	kind, ok := models.ParseKind(strings.ToLower(words[0]))
	if !ok {
		return models.Action{}, fmt.Errorf("invalid command %q", words[0])
	}
	action := models.Bare(kind)

	argCount := len(words) - 1
	if argCount == 0 {
		if !action.CanInferArgs() {
			return models.Action{}, fmt.Errorf("no arguments provided, and they cannot be inferred for %q", action.Name())
		}
		return action, nil
	}
	if argCount != action.ExpectedArgCount() {
		return models.Action{}, fmt.Errorf("incorrect number of arguments: got %d, want %d", argCount, action.ExpectedArgCount())
	}

	switch kind {
	case models.KindFire, models.KindUnfire, models.KindHit:
		column, err := parseNumber(words[1])
		if err != nil {
			return models.Action{}, err
		}
		row, err := parseNumber(words[2])
		if err != nil {
			return models.Action{}, err
		}
		action.Coord = models.FromUser(column, row)
	case models.KindSink, models.KindUnsink:
		length, err := parseNumber(words[1])
		if err != nil {
			return models.Action{}, err
		}
		action.Length = length
	}
	action.Resolved = true
	return action, nil
}

// parseNumber reads a positive integer; coordinates and ship lengths start
// at 1.
func parseNumber(word string) (int, error) {
	n, err := strconv.Atoi(word)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("unable to read given numeric value %q", word)
	}
	return n, nil
}

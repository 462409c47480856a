package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/admiral/models"
)

// promptList prints a numbered list and blocks until the player picks a
// valid 1-based entry, returning its zero-based index. Invalid input
// re-prompts; valid input is the only way out.
func (a *App) promptList(n int, describe func(int) string) int {
	for i := 0; i < n; i++ {
		fmt.Fprintf(a.out, "%d: %s\n", i+1, describe(i))
	}

	for {
		fmt.Fprint(a.out, "Your choice: ")
		line, ok := a.readLine()
		if !ok {
			log.Error("app [promptList]", "err", "input closed")
			return 0
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > n {
			fmt.Fprintln(a.out, "Invalid, please try again.")
			continue
		}
		return choice - 1
	}
}

// pickShipLocation asks the player where an ambiguous ship actually lay.
func (a *App) pickShipLocation(locations [][]models.Coordinate) int {
	fmt.Fprintln(a.out, "The ship to sink could be in multiple places. Please select one:")
	return a.promptList(len(locations), func(i int) string {
		var b strings.Builder
		for _, coord := range locations[i] {
			b.WriteString(coord.String())
		}
		return b.String()
	})
}

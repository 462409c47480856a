package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/wojtekolesinski/admiral/app"
)

const (
	defaultWidth  = 9
	defaultHeight = 7
)

var defaultShips = []int{2, 3, 3, 4, 5}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("main", "err", err)
	}

	width := envInt("ADMIRAL_WIDTH", defaultWidth)
	height := envInt("ADMIRAL_HEIGHT", defaultHeight)
	ships := envShips("ADMIRAL_SHIPS", defaultShips)

	app.New(width, height, ships).Run()
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		log.Fatal("main [envInt]", "key", key, "value", raw)
	}
	return value
}

// envShips reads a comma-separated list of ship lengths, e.g. "2,3,3,4,5".
func envShips(key string, fallback []int) []int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var ships []int
	for _, part := range strings.Split(raw, ",") {
		length, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || length < 1 {
			log.Fatal("main [envShips]", "key", key, "value", raw)
		}
		ships = append(ships, length)
	}
	return ships
}

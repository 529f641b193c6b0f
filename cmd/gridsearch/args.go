package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/search"
)

// parseCoordinate parses "row,col" (spaces allowed around either number).
func parseCoordinate(s string) (search.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return search.Coordinate{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return search.Coordinate{}, fmt.Errorf("coordinate %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return search.Coordinate{}, fmt.Errorf("coordinate %q: col: %w", s, err)
	}

	return search.Coordinate{Row: row, Col: col}, nil
}

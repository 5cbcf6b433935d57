package engine

import (
	"fmt"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
)

// TurnsPerYear is the number of turns before the year rolls over.
const TurnsPerYear = 4

// AdvanceTurn moves the calendar one turn forward, rolling 4 → 1 into the next year.
func AdvanceTurn(c data.Calendar) data.Calendar {
	c.Turn++
	if c.Turn > TurnsPerYear {
		c.Turn = 1
		c.Year++
	}
	return c
}

// SetCalendar builds a calendar from a GM overwrite.
func SetCalendar(year, turn int) (data.Calendar, error) {
	if turn < 1 || turn > TurnsPerYear {
		return data.Calendar{}, fmt.Errorf("turn %d: %w", turn, ErrInvalidTurn)
	}
	return data.Calendar{Year: year, Turn: turn}, nil
}

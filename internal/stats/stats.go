package stats

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/models"
)

// StreakStats are read-only aggregates over the streak habits in a collection.
type StreakStats struct {
	Total     int
	Active    int
	Longest   int
	TotalDays int
	Average   float64
}

// Calculate derives streak aggregates from a collection. Quantity habits are
// ignored; an empty input yields the zero value.
func Calculate(habits []models.Habit) StreakStats {
	var s StreakStats
	for _, h := range habits {
		sh := h.Streak()
		if sh == nil {
			continue
		}
		s.Total++
		s.TotalDays += sh.Streak
		if sh.Streak > 0 {
			s.Active++
		}
		if sh.Streak > s.Longest {
			s.Longest = sh.Streak
		}
	}
	if s.Total > 0 {
		s.Average = float64(s.TotalDays) / float64(s.Total)
	}
	return s
}

// Display returns the one-line summary shown in the TUI footer and the REPL.
func (s StreakStats) Display() string {
	return fmt.Sprintf("Longest %d • Active %d • Total %d • Average %.1f",
		s.Longest, s.Active, s.TotalDays, s.Average)
}

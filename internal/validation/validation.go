package validation

import (
	"github.com/julianstephens/habitctl/internal/models"
)

// IsValidHabitName reports whether a name is acceptable for a habit:
// non-empty kebab-case built from lowercase letters, digits, and internal
// hyphens. Names never contain whitespace or start/end with a hyphen.
func IsValidHabitName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// FindHabitByName returns the index of the first habit with the given name,
// or -1 when no habit matches. Names are compared case-sensitively.
func FindHabitByName(name string, habits []models.Habit) int {
	for i, h := range habits {
		if h.Name() == name {
			return i
		}
	}
	return -1
}

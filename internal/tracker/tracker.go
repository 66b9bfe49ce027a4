package tracker

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitctl/internal/clock"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/validation"
)

// ErrNotFound is returned when an operation targets a habit name that is not
// in the collection.
var ErrNotFound = errors.New("habit not found")

// Tracker owns the ordered habit collection and applies the user-facing
// operations to it. Creation order is display order. All mutating operations
// either succeed with a message or fail without touching state.
type Tracker struct {
	habits []models.Habit
	clock  clock.Clock
}

func New(c clock.Clock) *Tracker {
	return &Tracker{clock: c}
}

// Habits returns the live collection in display order.
func (t *Tracker) Habits() []models.Habit {
	return t.habits
}

// SetHabits replaces the collection, typically with the result of a store load.
func (t *Tracker) SetHabits(habits []models.Habit) {
	t.habits = habits
}

func (t *Tracker) Len() int {
	return len(t.habits)
}

func (t *Tracker) checkName(name string) error {
	if !validation.IsValidHabitName(name) {
		return fmt.Errorf("habit names should be kebab-case (lowercase letters, digits, hyphens)")
	}
	if validation.FindHabitByName(name, t.habits) >= 0 {
		return fmt.Errorf("habit '%s' already exists", name)
	}
	return nil
}

// Add creates a streak habit.
func (t *Tracker) Add(name string) (string, error) {
	if err := t.checkName(name); err != nil {
		return "", err
	}
	t.habits = append(t.habits, models.NewStreak(name))
	return fmt.Sprintf("Habit %s successfully added", name), nil
}

// Track creates a quantity habit whose accumulator starts today.
func (t *Tracker) Track(name, unit string, unitSize int64) (string, error) {
	if err := t.checkName(name); err != nil {
		return "", err
	}
	if unitSize <= 0 {
		return "", fmt.Errorf("unit_size must be a positive number")
	}
	t.habits = append(t.habits, models.NewQuantity(name, unit, unitSize, clock.Today(t.clock)))
	return "Quantity habit added!", nil
}

// Complete marks a streak habit done for today.
func (t *Tracker) Complete(name string) (string, error) {
	i := validation.FindHabitByName(name, t.habits)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	return t.habits[i].Complete(clock.Today(t.clock))
}

// Log records an amount against a quantity habit.
func (t *Tracker) Log(name string, amount int64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("quantity must not be negative")
	}
	i := validation.FindHabitByName(name, t.habits)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	return t.habits[i].Log(amount, clock.Today(t.clock), clock.Hour(t.clock))
}

// Reset zeroes a habit's live state, keeping closed-out history.
func (t *Tracker) Reset(name string) (string, error) {
	i := validation.FindHabitByName(name, t.habits)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	t.habits[i].Reset()
	return fmt.Sprintf("Reset habit %s", name), nil
}

// Delete removes a habit by positional removal.
func (t *Tracker) Delete(name string) (string, error) {
	i := validation.FindHabitByName(name, t.habits)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	t.habits = append(t.habits[:i], t.habits[i+1:]...)
	return fmt.Sprintf("Deleted: %s", name), nil
}

// View returns a habit's display line.
func (t *Tracker) View(name string) (string, error) {
	i := validation.FindHabitByName(name, t.habits)
	if i < 0 {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	return t.habits[i].DisplayLine(), nil
}

// List returns the numbered display lines, 1-based.
func (t *Tracker) List() []string {
	lines := make([]string, 0, len(t.habits))
	for i, h := range t.habits {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, h.DisplayLine()))
	}
	return lines
}

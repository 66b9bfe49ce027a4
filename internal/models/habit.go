package models

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/clock"
)

// Kind discriminates the two habit variants.
type Kind string

const (
	KindStreak   Kind = "streak"
	KindQuantity Kind = "quantity"
)

// StreakHabit counts consecutive qualifying days. LastCompleted is empty
// when the habit has never been completed; Streak is zero exactly then.
type StreakHabit struct {
	Name          string
	Streak        int
	LastCompleted string // YYYY-MM-DD, "" = never
}

// MarkComplete records a completion for the given civil date.
// Same-day completions are idempotent; a completion on the day after
// LastCompleted extends the streak; any other date starts a fresh run of 1.
func (h *StreakHabit) MarkComplete(today string) {
	switch h.LastCompleted {
	case "":
		h.Streak = 1
	case today:
		// already completed today
		return
	case clock.PreviousDay(today):
		h.Streak++
	default:
		h.Streak = 1
	}
	h.LastCompleted = today
}

// HourlyEntry is one logged value within the current day.
type HourlyEntry struct {
	Hour  int   `json:"hour"`
	Value int64 `json:"value"`
}

// DailyEntry is the closed-out total of one past day.
type DailyEntry struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// QuantityHabit accumulates logged amounts against the current day and
// rolls the accumulator into History when the date changes. Totals use a
// 64-bit accumulator so unit multiplication stays in range in practice.
type QuantityHabit struct {
	Name         string
	Unit         string
	UnitSize     int64
	TodayDate    string // YYYY-MM-DD
	TodayTotal   int64
	TodayHistory []HourlyEntry
	History      []DailyEntry
}

// LogAmount applies one logged amount at (today, hour). When today matches
// the accumulator's date the unit-value is appended and totalled. When the
// date has changed, the previous day is closed out into History and the
// accumulator reset; the amount that triggered the rollover is not recorded.
func (h *QuantityHabit) LogAmount(amount int64, today string, hour int) {
	if today != h.TodayDate {
		h.History = append(h.History, DailyEntry{Date: h.TodayDate, Value: h.TodayTotal})
		h.TodayDate = today
		h.TodayTotal = 0
		h.TodayHistory = []HourlyEntry{}
		return
	}
	value := amount * h.UnitSize
	h.TodayTotal += value
	h.TodayHistory = append(h.TodayHistory, HourlyEntry{Hour: hour, Value: value})
}

// Habit is the tagged sum over the two variants. Exactly one of the fields
// is non-nil; shared behavior dispatches on the variant.
type Habit struct {
	streak   *StreakHabit
	quantity *QuantityHabit
}

// NewStreak creates a streak habit with no completions.
func NewStreak(name string) Habit {
	return Habit{streak: &StreakHabit{Name: name}}
}

// NewQuantity creates a quantity habit whose accumulator starts on today.
func NewQuantity(name, unit string, unitSize int64, today string) Habit {
	return Habit{quantity: &QuantityHabit{
		Name:         name,
		Unit:         unit,
		UnitSize:     unitSize,
		TodayDate:    today,
		TodayHistory: []HourlyEntry{},
		History:      []DailyEntry{},
	}}
}

// Streak returns the streak variant, or nil.
func (h Habit) Streak() *StreakHabit { return h.streak }

// Quantity returns the quantity variant, or nil.
func (h Habit) Quantity() *QuantityHabit { return h.quantity }

func (h Habit) Kind() Kind {
	if h.streak != nil {
		return KindStreak
	}
	return KindQuantity
}

func (h Habit) Name() string {
	if h.streak != nil {
		return h.streak.Name
	}
	return h.quantity.Name
}

// Complete marks a streak habit done for the given date. It is an error on
// a quantity habit; no state changes then.
func (h Habit) Complete(today string) (string, error) {
	if h.streak == nil {
		return "", fmt.Errorf("cannot complete a quantity habit, use 'log %s <amount>' instead", h.Name())
	}
	h.streak.MarkComplete(today)
	return fmt.Sprintf("Streak: %d days", h.streak.Streak), nil
}

// Log records an amount against a quantity habit at (today, hour). It is an
// error on a streak habit; no state changes then.
func (h Habit) Log(amount int64, today string, hour int) (string, error) {
	if h.quantity == nil {
		return "", fmt.Errorf("cannot log an amount for a streak habit, use 'complete %s' instead", h.Name())
	}
	h.quantity.LogAmount(amount, today, hour)
	return fmt.Sprintf("Logged %d%s", h.quantity.TodayTotal, h.quantity.Unit), nil
}

// Reset zeroes the habit's live state. Streak habits lose their run and
// last-completed date; quantity habits lose the current day's accumulator.
// Closed-out history is preserved.
func (h Habit) Reset() {
	if h.streak != nil {
		h.streak.Streak = 0
		h.streak.LastCompleted = ""
		return
	}
	h.quantity.TodayTotal = 0
	h.quantity.TodayHistory = []HourlyEntry{}
}

// DisplayLine returns the habit's one-line summary.
func (h Habit) DisplayLine() string {
	if h.streak != nil {
		return fmt.Sprintf("[S] %s: streak %d", h.streak.Name, h.streak.Streak)
	}
	return fmt.Sprintf("[Q] %s: %d%s today", h.quantity.Name, h.quantity.TodayTotal, h.quantity.Unit)
}

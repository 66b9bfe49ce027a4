package models

import (
	"testing"
)

func TestMarkComplete(t *testing.T) {
	tests := []struct {
		name       string
		streak     int
		last       string
		today      string
		wantStreak int
	}{
		{"first completion", 0, "", "2025-01-10", 1},
		{"same day is idempotent", 3, "2025-01-10", "2025-01-10", 3},
		{"consecutive day extends", 3, "2025-01-09", "2025-01-10", 4},
		{"one missed day resets", 5, "2025-01-08", "2025-01-10", 1},
		{"long gap resets", 9, "2024-11-02", "2025-01-10", 1},
		{"future last date resets", 2, "2025-01-12", "2025-01-10", 1},
		{"across month boundary", 1, "2025-01-31", "2025-02-01", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := StreakHabit{Name: "read", Streak: tt.streak, LastCompleted: tt.last}
			h.MarkComplete(tt.today)

			if h.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", h.Streak, tt.wantStreak)
			}
			if h.LastCompleted != tt.today {
				t.Errorf("last completed = %q, want %q", h.LastCompleted, tt.today)
			}
		})
	}
}

func TestMarkCompleteSameDayLeavesStateUntouched(t *testing.T) {
	h := StreakHabit{Name: "read"}
	h.MarkComplete("2025-01-10")
	h.MarkComplete("2025-01-10")

	if h.Streak != 1 {
		t.Errorf("streak = %d after double completion, want 1", h.Streak)
	}
	if h.LastCompleted != "2025-01-10" {
		t.Errorf("last completed = %q, want 2025-01-10", h.LastCompleted)
	}
}

func TestMarkCompleteConsecutiveRun(t *testing.T) {
	h := StreakHabit{Name: "read"}
	days := []string{"2025-01-10", "2025-01-11", "2025-01-12", "2025-01-13"}
	for _, d := range days {
		h.MarkComplete(d)
	}

	if h.Streak != len(days) {
		t.Errorf("streak = %d after %d consecutive days, want %d", h.Streak, len(days), len(days))
	}
	if h.LastCompleted != days[len(days)-1] {
		t.Errorf("last completed = %q, want %q", h.LastCompleted, days[len(days)-1])
	}
}

func TestLogAmountAccumulates(t *testing.T) {
	h := QuantityHabit{Name: "water", Unit: "ml", UnitSize: 250, TodayDate: "2025-01-10"}

	h.LogAmount(2, "2025-01-10", 10)
	h.LogAmount(1, "2025-01-10", 11)

	if h.TodayTotal != 750 {
		t.Errorf("today total = %d, want 750", h.TodayTotal)
	}
	want := []HourlyEntry{{Hour: 10, Value: 500}, {Hour: 11, Value: 250}}
	if len(h.TodayHistory) != len(want) {
		t.Fatalf("today history has %d entries, want %d", len(h.TodayHistory), len(want))
	}
	var sum int64
	for i, e := range h.TodayHistory {
		if e != want[i] {
			t.Errorf("today history[%d] = %+v, want %+v", i, e, want[i])
		}
		sum += e.Value
	}
	if sum != h.TodayTotal {
		t.Errorf("sum of today history = %d, want today total %d", sum, h.TodayTotal)
	}
}

func TestLogAmountRollover(t *testing.T) {
	h := QuantityHabit{Name: "water", Unit: "ml", UnitSize: 250, TodayDate: "2025-01-10"}
	h.LogAmount(3, "2025-01-10", 9)

	// The log that crosses midnight closes out the previous day; its own
	// amount is not recorded.
	h.LogAmount(2, "2025-01-11", 9)

	if len(h.History) != 1 {
		t.Fatalf("history has %d entries after rollover, want 1", len(h.History))
	}
	if h.History[0] != (DailyEntry{Date: "2025-01-10", Value: 750}) {
		t.Errorf("history[0] = %+v, want {2025-01-10 750}", h.History[0])
	}
	if h.TodayDate != "2025-01-11" {
		t.Errorf("today date = %q, want 2025-01-11", h.TodayDate)
	}
	if h.TodayTotal != 0 {
		t.Errorf("today total = %d after rollover, want 0", h.TodayTotal)
	}
	if len(h.TodayHistory) != 0 {
		t.Errorf("today history has %d entries after rollover, want 0", len(h.TodayHistory))
	}
}

func TestResetStreak(t *testing.T) {
	h := NewStreak("read")
	if _, err := h.Complete("2025-01-10"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	h.Reset()

	if h.Streak().Streak != 0 {
		t.Errorf("streak = %d after reset, want 0", h.Streak().Streak)
	}
	if h.Streak().LastCompleted != "" {
		t.Errorf("last completed = %q after reset, want empty", h.Streak().LastCompleted)
	}
}

func TestResetQuantityKeepsHistory(t *testing.T) {
	h := NewQuantity("water", "ml", 250, "2025-01-10")
	if _, err := h.Log(2, "2025-01-10", 10); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	// Roll a day into history, then log again so there is live state to clear.
	if _, err := h.Log(1, "2025-01-11", 8); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if _, err := h.Log(1, "2025-01-11", 9); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	h.Reset()

	q := h.Quantity()
	if q.TodayTotal != 0 {
		t.Errorf("today total = %d after reset, want 0", q.TodayTotal)
	}
	if len(q.TodayHistory) != 0 {
		t.Errorf("today history has %d entries after reset, want 0", len(q.TodayHistory))
	}
	if len(q.History) != 1 {
		t.Errorf("history has %d entries after reset, want 1 (history is preserved)", len(q.History))
	}
}

func TestVariantMismatch(t *testing.T) {
	streak := NewStreak("read")
	quantity := NewQuantity("water", "ml", 250, "2025-01-10")

	if _, err := quantity.Complete("2025-01-10"); err == nil {
		t.Error("expected error completing a quantity habit")
	}
	if _, err := streak.Log(1, "2025-01-10", 10); err == nil {
		t.Error("expected error logging against a streak habit")
	}

	// Neither misuse may mutate state.
	if quantity.Quantity().TodayTotal != 0 {
		t.Errorf("quantity total = %d after failed complete, want 0", quantity.Quantity().TodayTotal)
	}
	if streak.Streak().Streak != 0 {
		t.Errorf("streak = %d after failed log, want 0", streak.Streak().Streak)
	}
}

func TestCompleteMessage(t *testing.T) {
	h := NewStreak("read")
	msg, err := h.Complete("2025-01-10")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if msg != "Streak: 1 days" {
		t.Errorf("message = %q, want \"Streak: 1 days\"", msg)
	}
}

func TestLogMessage(t *testing.T) {
	h := NewQuantity("water", "ml", 250, "2025-01-10")
	msg, err := h.Log(3, "2025-01-10", 10)
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if msg != "Logged 750ml" {
		t.Errorf("message = %q, want \"Logged 750ml\"", msg)
	}
}

func TestDisplayLine(t *testing.T) {
	streak := NewStreak("read-daily")
	if _, err := streak.Complete("2025-01-10"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if got := streak.DisplayLine(); got != "[S] read-daily: streak 1" {
		t.Errorf("display line = %q", got)
	}

	quantity := NewQuantity("water", "ml", 250, "2025-01-10")
	if _, err := quantity.Log(2, "2025-01-10", 10); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if got := quantity.DisplayLine(); got != "[Q] water: 500ml today" {
		t.Errorf("display line = %q", got)
	}
}

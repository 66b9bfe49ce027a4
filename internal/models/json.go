package models

import (
	"encoding/json"
	"fmt"
)

// Persisted records are flat objects with a "kind" discriminator so a single
// document can hold both variants. Unknown fields are ignored on read.

type streakRecord struct {
	Kind          Kind    `json:"kind"`
	Name          string  `json:"name"`
	Streak        int     `json:"streak"`
	LastCompleted *string `json:"last_completed"`
}

type quantityRecord struct {
	Kind         Kind          `json:"kind"`
	Name         string        `json:"name"`
	Unit         string        `json:"unit"`
	UnitSize     int64         `json:"unit_size"`
	TodayTotal   int64         `json:"today_total"`
	TodayDate    string        `json:"today_date"`
	TodayHistory []HourlyEntry `json:"today_history"`
	History      []DailyEntry  `json:"history"`
}

func (h Habit) MarshalJSON() ([]byte, error) {
	if s := h.streak; s != nil {
		rec := streakRecord{Kind: KindStreak, Name: s.Name, Streak: s.Streak}
		if s.LastCompleted != "" {
			rec.LastCompleted = &s.LastCompleted
		}
		return json.Marshal(rec)
	}
	q := h.quantity
	if q == nil {
		return nil, fmt.Errorf("cannot marshal an empty habit")
	}
	rec := quantityRecord{
		Kind:         KindQuantity,
		Name:         q.Name,
		Unit:         q.Unit,
		UnitSize:     q.UnitSize,
		TodayTotal:   q.TodayTotal,
		TodayDate:    q.TodayDate,
		TodayHistory: q.TodayHistory,
		History:      q.History,
	}
	if rec.TodayHistory == nil {
		rec.TodayHistory = []HourlyEntry{}
	}
	if rec.History == nil {
		rec.History = []DailyEntry{}
	}
	return json.Marshal(rec)
}

func (h *Habit) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Kind {
	case KindStreak:
		var rec streakRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		if rec.Streak < 0 {
			return fmt.Errorf("negative streak in habit %q", rec.Name)
		}
		s := &StreakHabit{Name: rec.Name, Streak: rec.Streak}
		if rec.LastCompleted != nil {
			s.LastCompleted = *rec.LastCompleted
		}
		*h = Habit{streak: s}
		return nil
	case KindQuantity:
		var rec quantityRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		if rec.UnitSize < 0 || rec.TodayTotal < 0 {
			return fmt.Errorf("negative amount in habit %q", rec.Name)
		}
		for _, e := range rec.TodayHistory {
			if e.Value < 0 {
				return fmt.Errorf("negative amount in habit %q", rec.Name)
			}
		}
		for _, e := range rec.History {
			if e.Value < 0 {
				return fmt.Errorf("negative amount in habit %q", rec.Name)
			}
		}
		q := &QuantityHabit{
			Name:         rec.Name,
			Unit:         rec.Unit,
			UnitSize:     rec.UnitSize,
			TodayTotal:   rec.TodayTotal,
			TodayDate:    rec.TodayDate,
			TodayHistory: rec.TodayHistory,
			History:      rec.History,
		}
		if q.TodayHistory == nil {
			q.TodayHistory = []HourlyEntry{}
		}
		if q.History == nil {
			q.History = []DailyEntry{}
		}
		*h = Habit{quantity: q}
		return nil
	default:
		return fmt.Errorf("unknown habit kind: %q", probe.Kind)
	}
}

package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitctl/internal/logger"
	"github.com/julianstephens/habitctl/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	position INTEGER NOT NULL,
	name TEXT NOT NULL UNIQUE,
	kind TEXT NOT NULL,
	streak INTEGER,
	last_completed TEXT,
	unit TEXT,
	unit_size INTEGER,
	today_date TEXT,
	today_total INTEGER
);
CREATE TABLE IF NOT EXISTS entries (
	habit TEXT NOT NULL,
	scope TEXT NOT NULL,
	seq INTEGER NOT NULL,
	hour INTEGER,
	date TEXT,
	value INTEGER NOT NULL
);`

// SQLiteStore persists the collection in a single-file SQLite database.
// Selected when the store path does not end in ".json". Each habit is one
// row in habits; hourly and daily history live in entries, ordered by seq.
type SQLiteStore struct {
	path string
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

func (s *SQLiteStore) Load() []models.Habit {
	// Opening would create the file, so an absent store is checked first.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []models.Habit{}
	}

	db, err := s.open()
	if err != nil {
		logger.Warn("habit store unreadable, starting fresh", "path", s.path, "error", err)
		return []models.Habit{}
	}
	defer db.Close()

	habits, err := s.loadHabits(db)
	if err != nil {
		logger.Warn("habit store malformed, starting fresh", "path", s.path, "error", err)
		return []models.Habit{}
	}
	return habits
}

func (s *SQLiteStore) loadHabits(db *sql.DB) ([]models.Habit, error) {
	rows, err := db.Query(`
		SELECT name, kind, streak, last_completed, unit, unit_size, today_date, today_total
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var (
			name, kind       string
			streak, unitSize sql.NullInt64
			lastCompleted    sql.NullString
			unit, todayDate  sql.NullString
			todayTotal       sql.NullInt64
		)
		if err := rows.Scan(&name, &kind, &streak, &lastCompleted, &unit, &unitSize, &todayDate, &todayTotal); err != nil {
			return nil, err
		}

		switch models.Kind(kind) {
		case models.KindStreak:
			h := models.NewStreak(name)
			h.Streak().Streak = int(streak.Int64)
			h.Streak().LastCompleted = lastCompleted.String
			habits = append(habits, h)
		case models.KindQuantity:
			h := models.NewQuantity(name, unit.String, unitSize.Int64, todayDate.String)
			h.Quantity().TodayTotal = todayTotal.Int64
			if err := s.loadEntries(db, h.Quantity()); err != nil {
				return nil, err
			}
			habits = append(habits, h)
		default:
			return nil, fmt.Errorf("unknown habit kind: %q", kind)
		}
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) loadEntries(db *sql.DB, q *models.QuantityHabit) error {
	rows, err := db.Query(`
		SELECT scope, hour, date, value FROM entries
		WHERE habit = ? ORDER BY seq`, q.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			scope string
			hour  sql.NullInt64
			date  sql.NullString
			value int64
		)
		if err := rows.Scan(&scope, &hour, &date, &value); err != nil {
			return err
		}
		switch scope {
		case "hour":
			q.TodayHistory = append(q.TodayHistory, models.HourlyEntry{Hour: int(hour.Int64), Value: value})
		case "day":
			q.History = append(q.History, models.DailyEntry{Date: date.String, Value: value})
		default:
			return fmt.Errorf("unknown entry scope: %q", scope)
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) Save(habits []models.Habit) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The whole collection is flushed each save; replace all rows.
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for i, h := range habits {
		if err := s.insertHabit(tx, i, h); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) insertHabit(tx *sql.Tx, position int, h models.Habit) error {
	if sh := h.Streak(); sh != nil {
		var last interface{}
		if sh.LastCompleted != "" {
			last = sh.LastCompleted
		}
		_, err := tx.Exec(`
			INSERT INTO habits (position, name, kind, streak, last_completed)
			VALUES (?, ?, ?, ?, ?)`,
			position, sh.Name, string(models.KindStreak), sh.Streak, last)
		if err != nil {
			return fmt.Errorf("failed to insert habit %q: %w", sh.Name, err)
		}
		return nil
	}

	q := h.Quantity()
	_, err := tx.Exec(`
		INSERT INTO habits (position, name, kind, unit, unit_size, today_date, today_total)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		position, q.Name, string(models.KindQuantity), q.Unit, q.UnitSize, q.TodayDate, q.TodayTotal)
	if err != nil {
		return fmt.Errorf("failed to insert habit %q: %w", q.Name, err)
	}

	seq := 0
	for _, e := range q.TodayHistory {
		if _, err := tx.Exec(`
			INSERT INTO entries (habit, scope, seq, hour, value) VALUES (?, 'hour', ?, ?, ?)`,
			q.Name, seq, e.Hour, e.Value); err != nil {
			return fmt.Errorf("failed to insert hourly entry for %q: %w", q.Name, err)
		}
		seq++
	}
	for _, e := range q.History {
		if _, err := tx.Exec(`
			INSERT INTO entries (habit, scope, seq, date, value) VALUES (?, 'day', ?, ?, ?)`,
			q.Name, seq, e.Date, e.Value); err != nil {
			return fmt.Errorf("failed to insert daily entry for %q: %w", q.Name, err)
		}
		seq++
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/habitctl/internal/logger"
	"github.com/julianstephens/habitctl/internal/models"
)

// JSONStore persists the collection as a pretty-printed JSON document at a
// fixed path. The file handle is opened and closed around each operation.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Load() []models.Habit {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("habit store unreadable, starting fresh", "path", s.path, "error", err)
		}
		return []models.Habit{}
	}

	var habits []models.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		logger.Warn("habit store malformed, starting fresh", "path", s.path, "error", err)
		return []models.Habit{}
	}
	if habits == nil {
		habits = []models.Habit{}
	}

	return habits
}

func (s *JSONStore) Save(habits []models.Habit) error {
	if habits == nil {
		habits = []models.Habit{}
	}

	data, err := json.MarshalIndent(habits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write habit store: %w", err)
	}

	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

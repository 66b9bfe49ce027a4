package storage

import "github.com/julianstephens/habitctl/internal/models"

// Provider persists the whole habit collection. Load never fails from the
// caller's point of view: an absent, unreadable, or malformed store yields an
// empty collection so the user simply starts fresh. Save reports failures and
// leaves the in-memory collection untouched; callers decide whether that is
// fatal. Concurrent processes writing the same store are unsupported.
type Provider interface {
	Load() []models.Habit
	Save([]models.Habit) error
	Path() string
}

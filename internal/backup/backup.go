package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitctl/internal/logger"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "habitctl-"
)

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager copies the habit store into a rotating set of timestamped backups
// kept in a backups directory beside the store file.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), BackupDirName),
		suffix:    filepath.Ext(storePath),
	}
}

// BackupDir returns the backup directory path
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// CreateBackup copies the store into a new timestamped backup file and
// rotates old backups. The store file must exist.
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := os.ReadFile(m.storePath)
	if err != nil {
		return "", fmt.Errorf("failed to read store: %w", err)
	}

	// Minute precision first; fall back to seconds if that name is taken.
	name := BackupFilePrefix + time.Now().Format("20060102-1504") + m.suffix
	path := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(path); err == nil {
		name = BackupFilePrefix + time.Now().Format("20060102-150405") + m.suffix
		path = filepath.Join(m.backupDir, name)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		return path, fmt.Errorf("backup created but rotation failed: %w", err)
	}
	return path, nil
}

// ListBackups returns the existing backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), BackupFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotate removes the oldest backups beyond MaxBackups.
func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= MaxBackups {
		return nil
	}
	for _, old := range backups[MaxBackups:] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

// Automatic performs a best-effort backup of the store on startup. A missing
// store is skipped silently; other failures are logged, never fatal.
func Automatic(storePath string) {
	if _, err := os.Stat(storePath); os.IsNotExist(err) {
		return
	}
	path, err := NewManager(storePath).CreateBackup()
	if err != nil {
		logger.Warn("automatic backup failed", "store", storePath, "error", err)
		return
	}
	logger.Debug("automatic backup created", "path", path)
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/storage"
)

// Model is the read-only full-screen view: a header band, the habit list
// with streak progress bars, and a stats footer. The only accepted key is
// quit; mutation happens in the REPL.
type Model struct {
	habits   []models.Habit
	keys     KeyMap
	width    int
	height   int
	quitting bool
}

func NewModel(habits []models.Habit) Model {
	return Model{
		habits: habits,
		keys:   DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run loads the collection and drives the program on the alternate screen.
// bubbletea restores the terminal on every exit path, including panics; a
// setup failure here is the only fatal error in the application.
func Run(store storage.Provider) error {
	p := tea.NewProgram(NewModel(store.Load()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/stats"
)

// barWidth is the number of cells in a streak progress bar.
const barWidth = 10

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Width(m.width).Render("HABIT TRACKER")
	footer := footerStyle.Render(stats.Calculate(m.habits).Display())
	hint := hintStyle.Render("[q]uit")

	// The habit band fills whatever the three fixed rows leave over.
	bandHeight := m.height - 3
	if bandHeight < 0 {
		bandHeight = 0
	}
	band := lipgloss.Place(m.width, bandHeight, lipgloss.Left, lipgloss.Top, m.viewHabits())

	return lipgloss.JoinVertical(lipgloss.Left, header, band, footer, hint)
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return emptyStyle.Render("No habits yet!")
	}
	rows := make([]string, 0, len(m.habits))
	for _, h := range m.habits {
		rows = append(rows, rowStyle.Render(habitRow(h)))
	}
	return strings.Join(rows, "\n")
}

func habitRow(h models.Habit) string {
	sh := h.Streak()
	if sh == nil {
		return h.DisplayLine()
	}
	return fmt.Sprintf("%s %s %d", sh.Name, progressBar(sh.Streak), sh.Streak)
}

func progressBar(streak int) string {
	filled := streak
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)
}

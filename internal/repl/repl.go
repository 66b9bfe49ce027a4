package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/julianstephens/habitctl/internal/clock"
	"github.com/julianstephens/habitctl/internal/logger"
	"github.com/julianstephens/habitctl/internal/stats"
	"github.com/julianstephens/habitctl/internal/storage"
	"github.com/julianstephens/habitctl/internal/tracker"
)

// REPL is the line-oriented front-end. It reads whitespace-separated
// commands, applies them to the tracker, and prints human-readable feedback.
// Every failure is recovered locally; the loop only ends on quit or EOF.
type REPL struct {
	in      io.Reader
	out     io.Writer
	store   storage.Provider
	tracker *tracker.Tracker
}

func New(store storage.Provider, c clock.Clock, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		in:      in,
		out:     out,
		store:   store,
		tracker: tracker.New(c),
	}
}

// Run loads the collection, processes commands until quit or EOF, and
// auto-saves on quit.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, "💪 Habit Tracker CLI")
	fmt.Fprintln(r.out)
	r.tracker.SetHabits(r.store.Load())

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, ">")
		if !scanner.Scan() {
			return scanner.Err()
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if !r.dispatch(parts[0], parts[1:]) {
			return nil
		}
	}
}

// dispatch runs one command; it returns false when the loop should end.
func (r *REPL) dispatch(command string, args []string) bool {
	switch command {
	case "add", "a":
		r.add(args)
	case "track", "t":
		r.track(args)
	case "complete", "c":
		if name, ok := r.habitName("complete", args); ok {
			r.report(r.tracker.Complete(name))
		}
	case "log":
		r.log(args)
	case "view", "v":
		if name, ok := r.habitName("view", args); ok {
			line, err := r.tracker.View(name)
			if err != nil {
				fmt.Fprintf(r.out, "❌ %v\n", err)
				return true
			}
			fmt.Fprintln(r.out, line)
		}
	case "list", "l":
		r.list()
	case "reset", "r":
		if name, ok := r.habitName("reset", args); ok {
			r.report(r.tracker.Reset(name))
		}
	case "delete", "d":
		if name, ok := r.habitName("delete", args); ok {
			msg, err := r.tracker.Delete(name)
			if err != nil {
				fmt.Fprintf(r.out, "❌ %v\n", err)
				return true
			}
			fmt.Fprintf(r.out, "🗑  %s\n", msg)
		}
	case "save", "s":
		if err := r.store.Save(r.tracker.Habits()); err != nil {
			fmt.Fprintf(r.out, "❌ Error saving to file: %v\n", err)
		} else {
			fmt.Fprintln(r.out, "Saved progress")
		}
	case "stats":
		r.stats()
	case "help", "h":
		r.help()
	case "quit", "q":
		if err := r.store.Save(r.tracker.Habits()); err != nil {
			logger.Warn("save on quit failed", "error", err)
			fmt.Fprintf(r.out, "❌ Error saving to file: %v\n", err)
			fmt.Fprintln(r.out, "👋 Goodbye!")
		} else {
			fmt.Fprintln(r.out, "auto saving progress, 👋 Goodbye!")
		}
		return false
	default:
		fmt.Fprintf(r.out, "❌ Unknown command: '%s'\n", command)
		fmt.Fprintln(r.out, "💡 Type 'help' to see available commands")
	}
	return true
}

// habitName extracts the single name argument shared by most commands,
// printing a usage line or the hyphen suggestion when it cannot.
func (r *REPL) habitName(command string, args []string) (string, bool) {
	switch {
	case len(args) == 0:
		fmt.Fprintf(r.out, "❌ Usage: %s <habit-name>\n", command)
		return "", false
	case len(args) > 1:
		fmt.Fprintln(r.out, "❌ Habit name cannot contain spaces")
		fmt.Fprintf(r.out, "   Did you mean: %s?\n", strings.Join(args, "-"))
		return "", false
	}
	return args[0], true
}

func (r *REPL) report(msg string, err error) {
	if err != nil {
		fmt.Fprintf(r.out, "❌ %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "✅ %s\n", msg)
}

func (r *REPL) add(args []string) {
	name, ok := r.habitName("add", args)
	if !ok {
		return
	}
	r.report(r.tracker.Add(name))
}

func (r *REPL) track(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(r.out, "To use: track <name> <unit> <unit_size>")
		return
	}
	unitSize, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		fmt.Fprintln(r.out, "unit_size must be a number")
		return
	}
	msg, err := r.tracker.Track(args[0], args[1], unitSize)
	if err != nil {
		fmt.Fprintf(r.out, "❌ %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "📊 %s\n", msg)
}

func (r *REPL) log(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "To use: log <name> <quantity>")
		return
	}
	quantity, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintln(r.out, "quantity must be a number")
		return
	}
	r.report(r.tracker.Log(args[0], quantity))
}

func (r *REPL) list() {
	if r.tracker.Len() == 0 {
		fmt.Fprintln(r.out, "No habits yet!")
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Your habits:")
	for _, line := range r.tracker.List() {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
}

func (r *REPL) stats() {
	s := stats.Calculate(r.tracker.Habits())
	if s.Total == 0 {
		fmt.Fprintln(r.out, "📊 No habits to show stats for!")
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "📊 Habit Statistics")
	fmt.Fprintln(r.out, "━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(r.out, "Total habits: %d\n", s.Total)
	fmt.Fprintf(r.out, "Active (streak > 0): %d\n", s.Active)
	fmt.Fprintf(r.out, "Longest streak: %d days\n", s.Longest)
	fmt.Fprintf(r.out, "Average streak: %.1f days\n", s.Average)
	fmt.Fprintln(r.out, s.Display())
	fmt.Fprintln(r.out)
}

func (r *REPL) help() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "📋 Available Commands:")
	fmt.Fprintln(r.out, "  add <name>                      - Add a new streak habit")
	fmt.Fprintln(r.out, "  track <name> <unit> <unit_size> - Add a new quantity habit")
	fmt.Fprintln(r.out, "  complete <name>                 - Mark a streak habit done today")
	fmt.Fprintln(r.out, "  log <name> <quantity>           - Log an amount against a quantity habit")
	fmt.Fprintln(r.out, "  view <name>                     - Show one habit")
	fmt.Fprintln(r.out, "  list                            - Show all habits")
	fmt.Fprintln(r.out, "  reset <name>                    - Reset a habit to 0")
	fmt.Fprintln(r.out, "  delete <name>                   - Remove a habit")
	fmt.Fprintln(r.out, "  stats                           - Show streak statistics")
	fmt.Fprintln(r.out, "  save                            - Save to file")
	fmt.Fprintln(r.out, "  quit                            - Save and exit")
	fmt.Fprintln(r.out)
}
